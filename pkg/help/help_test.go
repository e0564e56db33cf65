package help_test

import (
	"testing"

	infrastorage "github.com/amirasaad/fxcli/infra/storage"
	"github.com/amirasaad/fxcli/pkg/help"
	"github.com/amirasaad/fxcli/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := help.Default()
	require.NoError(t, err)
	assert.Equal(t, "How Currency Conversion Works", c.Conversion.Title)
	assert.Len(t, c.Conversion.Steps, 4)
	assert.Len(t, c.Conversion.Notes, 3)
	assert.Equal(t, "Understanding Predictions", c.Predictions.Title)
	assert.Len(t, c.Predictions.Daily, 3)
	assert.Len(t, c.Predictions.Hourly, 3)
	assert.Contains(t, c.Conversion.Example, "92.00 EUR")
}

func TestRepository_EnsureCreatesDefault(t *testing.T) {
	store := infrastorage.NewMemory()
	repo := help.NewRepository(store, nil)

	require.NoError(t, repo.Ensure())
	assert.Equal(t, 1, store.Saves())

	loaded, err := repo.Load()
	require.NoError(t, err)
	expected, err := help.Default()
	require.NoError(t, err)
	assert.Equal(t, expected, loaded)
}

func TestRepository_EnsureKeepsExisting(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "custom content", raw: `{"conversion":{"title":"Custom"}}`},
		{name: "malformed content", raw: `{broken`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := infrastorage.NewMemory()
			store.Put([]byte(tt.raw))
			repo := help.NewRepository(store, nil)

			require.NoError(t, repo.Ensure())
			assert.Zero(t, store.Saves())
			assert.Equal(t, []byte(tt.raw), store.Raw())
		})
	}
}

func TestRepository_LoadErrors(t *testing.T) {
	repo := help.NewRepository(infrastorage.NewMemory(), nil)
	_, err := repo.Load()
	assert.ErrorIs(t, err, storage.ErrNotFound)

	store := infrastorage.NewMemory()
	store.Put([]byte("[1,2"))
	_, err = help.NewRepository(store, nil).Load()
	assert.ErrorIs(t, err, storage.ErrMalformed)
}

func TestContent_Lines(t *testing.T) {
	c, err := help.Default()
	require.NoError(t, err)

	lines := c.Lines()
	assert.Equal(t, "=== Currency Converter Help ===", lines[0])
	assert.Contains(t, lines, "Steps:")
	assert.Contains(t, lines, "Important Notes:")
	assert.Contains(t, lines, "• All conversions are saved in your history")
	assert.Contains(t, lines, "• Hourly predictions show detailed short-term trends")
	assert.Contains(t, lines, "• Daily predictions show possible rate changes over 24 hours")
	assert.Equal(t, "• Includes trend indicators (↑/↓) and percentage changes", lines[len(lines)-1])
}
