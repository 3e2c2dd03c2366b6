package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	domain "github.com/Benian44/ly-confection/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCartStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "cart.json")
	s := NewFileCartStorage(path)

	cart := domain.Cart{
		{ProductID: "1", Name: "Chemise", Price: 15000, Quantity: 2, Size: "M", Color: "Blanc"},
	}
	require.NoError(t, s.Save(ctx, cart))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, cart, got)
}

func TestFileCartStorageAbsentFileIsEmpty(t *testing.T) {
	s := NewFileCartStorage(filepath.Join(t.TempDir(), "nope.json"))
	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileCartStorageCorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewFileCartStorage(path)
	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
