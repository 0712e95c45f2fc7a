// Package cli holds the local-mode commands that talk to the database
// directly, without going through the API server.
package cli

import (
	"fmt"

	"github.com/kutbudev/gorevce/internal/store"
	"github.com/kutbudev/gorevce/pkg/config"
	"github.com/kutbudev/gorevce/pkg/repository"
)

// openStores connects to the configured database and builds the stores.
func openStores() (*store.TaskStore, *store.TagStore, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	db, err := repository.NewDatabase(cfg)
	if err != nil {
		return nil, nil, err
	}
	return store.NewTaskStore(db), store.NewTagStore(db), nil
}
