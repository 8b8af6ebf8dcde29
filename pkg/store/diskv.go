// Package store persists the serialized state document. The whole document
// lives under a single storage key and is read and written verbatim; decoding
// and recovery belong to the state package.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// stateKey is the single key the document blob is stored under.
const stateKey = "state"

// Persistence is the storage contract for the state document.
type Persistence interface {
	Load(ctx context.Context) ([]byte, error)
	Save(data []byte) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// Load returns the stored blob, or nil when no document has been written yet.
func (p *persistence) Load(ctx context.Context) ([]byte, error) {
	if !p.d.Has(stateKey) {
		return nil, nil
	}
	data, err := p.d.Read(stateKey)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: read %s: %w", stateKey, err)
	}
	return data, nil
}

// Save writes the blob under the state key.
func (p *persistence) Save(data []byte) error {
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return fmt.Errorf("store: ensure base path: %w", err)
	}
	if err := p.d.Write(stateKey, data); err != nil {
		return fmt.Errorf("store: write %s: %w", stateKey, err)
	}
	return nil
}
