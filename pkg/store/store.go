// Package store provides the bulk persistence backends for the exam
// schedule and the configuration that selects one.
package store

import (
	"fmt"

	"tableflip.dev/dday/pkg/schedule"
)

// Persistence is a schedule collaborator that knows where it keeps its data.
type Persistence interface {
	schedule.Persistence
	Path() string
	Close() error
}

// Load opens the backend described by cfg, loading the configuration first
// when cfg is nil.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return Open(cfg.Backend(), cfg.BasePath())
}

// Open creates the named backend at path.
func Open(backend Backend, path string) (Persistence, error) {
	switch backend {
	case BackendJSON, "":
		return NewJSONFile(path), nil
	case BackendDiskv:
		return NewDiskv(path)
	case BackendSQLite:
		return NewSQLite(path)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("store: unknown backend %q", backend)
	}
}
