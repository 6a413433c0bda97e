package inmemdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/portal/core/paper"
)

type paperRepository struct {
	db *paperTable
}

var _ paper.Repository = (*paperRepository)(nil) // interface compliance check

func NewPaperRepository(db *DB) paper.Repository {
	return &paperRepository{db: db.papers}
}

func (repo *paperRepository) QueryPapers(_ context.Context) ([]paper.Paper, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	all := make([]paper.Paper, len(repo.db.rows))
	copy(all, repo.db.rows)
	return all, nil
}

func (repo *paperRepository) GetPaper(_ context.Context, id string) (paper.Paper, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if i, ok := repo.db.index[id]; ok {
		return repo.db.rows[i], nil
	}
	return paper.Paper{}, paper.ErrNotFound
}

func (repo *paperRepository) CreatePaper(_ context.Context, p paper.Paper) (paper.Paper, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if _, ok := repo.db.index[p.ID]; ok {
		return paper.Paper{}, errors.Errorf("paper %q already exists", p.ID)
	}
	repo.db.index[p.ID] = len(repo.db.rows)
	repo.db.rows = append(repo.db.rows, p)
	return p, nil
}

func (repo *paperRepository) CountPapers(_ context.Context) (int, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return len(repo.db.rows), nil
}
