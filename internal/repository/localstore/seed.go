package localstore

import (
	"encoding/json"
	"errors"
	"io/fs"

	"go.uber.org/zap"

	"github.com/mael/portfolio-showcase/internal/domain"
	"github.com/mael/portfolio-showcase/internal/repository"
	"github.com/mael/portfolio-showcase/internal/store"
)

// NewRepositories wires the three store-backed repositories.
func NewRepositories(s store.Store) *repository.Repositories {
	return &repository.Repositories{
		User:    NewUserRepo(s),
		Project: NewProjectRepo(s),
		Session: NewSessionRepo(s),
	}
}

// Seed loads the bundled fixtures into the store, once, for each collection
// that has no durable copy yet. The fixture is a seed, not a source of
// truth: when a durable copy exists it wins, so user edits survive restarts.
//
// A fixture that fails to load is logged and skipped; the collection simply
// starts empty. There is no retry.
func Seed(s store.Store, fixtures fs.FS, log *zap.Logger) {
	seedCollection[domain.User](s, fixtures, keyUsers, "data/users.json", log)
	seedCollection[domain.Project](s, fixtures, keyProjects, "data/projects.json", log)
}

func seedCollection[T any](s store.Store, fixtures fs.FS, key, path string, log *zap.Logger) {
	var existing []T
	err := s.Get(key, &existing)
	if err == nil {
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Warn("reading durable collection failed, reseeding", zap.String("key", key), zap.Error(err))
	}

	raw, err := fs.ReadFile(fixtures, path)
	if err != nil {
		log.Warn("fixture unavailable, collection starts empty", zap.String("fixture", path), zap.Error(err))
		return
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Warn("fixture unreadable, collection starts empty", zap.String("fixture", path), zap.Error(err))
		return
	}
	if err := s.Put(key, records); err != nil {
		log.Warn("seeding collection failed", zap.String("key", key), zap.Error(err))
		return
	}
	log.Info("seeded collection from fixture", zap.String("key", key), zap.Int("records", len(records)))
}
