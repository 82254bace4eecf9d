package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/elanicia/storefront/cart/internal/domain"
	"github.com/elanicia/storefront/internal/log"
)

// FileStorage keeps the cart as a JSON array in a single local file, the
// synchronous key-value store of a single browser tab generalized to disk.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (s *FileStorage) Load(c context.Context) ([]domain.LineItem, error) {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KEY_TAG, "FileStorage Load").
		Str(log.KEY_STORAGE_PATH, s.path).
		Logger()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Info().Msg("cart file does not exist, starting with empty cart")
			return []domain.LineItem{}, nil
		}
		return nil, fmt.Errorf("failed reading cart file with error=%w", err)
	}

	items := []domain.LineItem{}
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Warn().Err(err).Msg("cart file is corrupt, starting with empty cart")
		return []domain.LineItem{}, nil
	}
	return items, nil
}

func (s *FileStorage) Save(c context.Context, items []domain.LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed marshaling cart with error=%w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed writing cart file with error=%w", err)
	}
	return nil
}

func (s *FileStorage) Delete(c context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed removing cart file with error=%w", err)
	}
	return nil
}
