package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	domain "github.com/Benian44/ly-confection/internal/entity"
	"github.com/Benian44/ly-confection/internal/usecase"
)

// FileCartStorage persists the cart as a JSON file, so the service
// runs durable with no Redis at all.
type FileCartStorage struct {
	path string
}

func NewFileCartStorage(path string) *FileCartStorage {
	return &FileCartStorage{path: path}
}

func (s *FileCartStorage) Load(_ context.Context) (domain.Cart, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var cart domain.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		// Corrupt file reads as an empty cart.
		return nil, nil
	}
	return cart, nil
}

func (s *FileCartStorage) Save(_ context.Context, cart domain.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	// Write then rename so a crash mid-write never leaves a torn file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

var _ usecase.CartStorage = (*FileCartStorage)(nil)
