package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/Kay-svg505/Philologic-platform/internal/db"
)

// ProbeService checks database connectivity.
type ProbeService interface {
	PingDatabase(ctx context.Context) (int, error)
}

type probeService struct {
	db *gorm.DB
}

// NewProbeService builds a ProbeService.
func NewProbeService(gormDB *gorm.DB) ProbeService {
	return &probeService{db: gormDB}
}

// PingDatabase runs SELECT 1 and returns its result.
func (s *probeService) PingDatabase(ctx context.Context) (int, error) {
	return db.Ping(ctx, s.db)
}
