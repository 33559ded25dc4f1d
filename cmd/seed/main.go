package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Kay-svg505/Philologic-platform/internal/config"
	"github.com/Kay-svg505/Philologic-platform/internal/db"
	"github.com/Kay-svg505/Philologic-platform/internal/logger"
	"github.com/Kay-svg505/Philologic-platform/internal/model"
	"github.com/Kay-svg505/Philologic-platform/internal/repository"
)

const fetchTimeout = 30 * time.Second

// seedResult counts what a seed run changed.
type seedResult struct {
	PhilosophersCreated int
	PhilosophersUpdated int
	ModulesCreated      int
	ModulesUpdated      int
}

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.IsProduction())
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting seed", zap.String("driver", cfg.DBDriver))

	gormDB, err := db.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatal("connect to database", zap.Error(err))
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("run migrations", zap.Error(err))
	}
	log.Info("database migrations completed")

	catalog := defaultCatalog
	if url := os.Getenv("SEED_URL"); url != "" {
		log.Info("fetching catalog", zap.String("url", url))
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		catalog, err = fetchCatalog(ctx, http.DefaultClient, url)
		cancel()
		if err != nil {
			log.Fatal("fetch catalog", zap.Error(err))
		}
		log.Info("fetched catalog", zap.Int("philosophers", len(catalog)))
	}

	repo := repository.NewPhilosopherRepository(gormDB)
	result, err := seedCatalog(context.Background(), repo, catalog)
	if err != nil {
		log.Fatal("seed catalog", zap.Error(err))
	}

	log.Info("seed completed",
		zap.Int("philosophers_created", result.PhilosophersCreated),
		zap.Int("philosophers_updated", result.PhilosophersUpdated),
		zap.Int("modules_created", result.ModulesCreated),
		zap.Int("modules_updated", result.ModulesUpdated),
	)
}

// fetchCatalog downloads a JSON catalog. Any non-200 status is an error.
func fetchCatalog(ctx context.Context, client *http.Client, url string) ([]SeedPhilosopher, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog source returned status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	var catalog []SeedPhilosopher
	if err := json.Unmarshal(body, &catalog); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	return catalog, nil
}

// seedCatalog upserts every philosopher and module in one transaction.
// Philosophers match by name, modules by philosopher and title.
func seedCatalog(ctx context.Context, repo repository.PhilosopherRepository, catalog []SeedPhilosopher) (seedResult, error) {
	var result seedResult
	err := repo.WithTransaction(ctx, func(ctx context.Context, tx repository.PhilosopherRepository) error {
		result = seedResult{}
		for _, item := range catalog {
			philosopher := &model.Philosopher{
				Name:               item.Name,
				WorkTitle:          item.WorkTitle,
				Description:        item.Description,
				ReasoningFramework: item.ReasoningFramework,
			}
			created, err := tx.UpsertByName(ctx, philosopher)
			if err != nil {
				return fmt.Errorf("upsert philosopher %q: %w", item.Name, err)
			}
			if created {
				result.PhilosophersCreated++
			} else {
				result.PhilosophersUpdated++
			}

			for _, m := range item.Modules {
				module := &model.LearningModule{
					PhilosopherID:   philosopher.ID,
					Title:           m.Title,
					Content:         m.Content,
					DifficultyLevel: m.DifficultyLevel,
					IsPremium:       m.IsPremium,
				}
				created, err := tx.UpsertModule(ctx, module)
				if err != nil {
					return fmt.Errorf("upsert module %q of %q: %w", m.Title, item.Name, err)
				}
				if created {
					result.ModulesCreated++
				} else {
					result.ModulesUpdated++
				}
			}
		}
		return nil
	})
	return result, err
}
