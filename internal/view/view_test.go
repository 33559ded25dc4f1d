package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kay-svg505/Philologic-platform/internal/model"
)

func TestRenderer(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	t.Run("philosophers page escapes content", func(t *testing.T) {
		var buf bytes.Buffer
		err := r.Render(&buf, PagePhilosophers, PageData{
			Title: "Philosophers",
			Philosophers: []model.Philosopher{
				{ID: 1, Name: "Plato", WorkTitle: "Allegory of the Cave", Description: "<script>x</script>"},
			},
		}, nil)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Allegory of the Cave")
		assert.NotContains(t, buf.String(), "<script>x</script>")
	})

	t.Run("flash and username", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.Render(&buf, PageIndex, PageData{Username: "kant", Flash: "Welcome back, kant!"}, nil))
		assert.Contains(t, buf.String(), "Welcome back, kant!")
		assert.Contains(t, buf.String(), "/logout")
	})

	t.Run("anonymous index", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.Render(&buf, PageIndex, PageData{}, nil))
		assert.Contains(t, buf.String(), "/register")
		assert.NotContains(t, buf.String(), "notes-form")
	})

	t.Run("unknown page", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, r.Render(&buf, "missing", PageData{}, nil))
	})

	for _, page := range []string{PageRegister, PageLogin} {
		var buf bytes.Buffer
		require.NoError(t, r.Render(&buf, page, PageData{}, nil), page)
		assert.Contains(t, buf.String(), "<form", page)
	}
}
