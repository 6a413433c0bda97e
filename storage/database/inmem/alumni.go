package inmemdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/portal/core/alumni"
)

type alumniRepository struct {
	db *alumniTable
}

var _ alumni.Repository = (*alumniRepository)(nil) // interface compliance check

func NewAlumniRepository(db *DB) alumni.Repository {
	return &alumniRepository{db: db.alumni}
}

func (repo *alumniRepository) QueryAlumni(_ context.Context) ([]alumni.Alumnus, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	all := make([]alumni.Alumnus, len(repo.db.rows))
	copy(all, repo.db.rows)
	return all, nil
}

func (repo *alumniRepository) GetAlumnus(_ context.Context, id string) (alumni.Alumnus, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if i, ok := repo.db.index[id]; ok {
		return repo.db.rows[i], nil
	}
	return alumni.Alumnus{}, alumni.ErrNotFound
}

func (repo *alumniRepository) CreateAlumnus(_ context.Context, a alumni.Alumnus) (alumni.Alumnus, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if _, ok := repo.db.index[a.ID]; ok {
		return alumni.Alumnus{}, errors.Errorf("alumnus %q already exists", a.ID)
	}
	repo.db.index[a.ID] = len(repo.db.rows)
	repo.db.rows = append(repo.db.rows, a)
	return a, nil
}

func (repo *alumniRepository) CountAlumni(_ context.Context) (int, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return len(repo.db.rows), nil
}
