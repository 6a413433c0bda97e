package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/portal/core/paper"
)

const paperColumns = `id, subject, year, semester, exam_type, department`

type paperRepository struct {
	db *sqlx.DB
}

var _ paper.Repository = (*paperRepository)(nil) // interface compliance check

func NewPaperRepository(db *sqlx.DB) paper.Repository {
	return &paperRepository{db: db}
}

func (repo *paperRepository) QueryPapers(ctx context.Context) ([]paper.Paper, error) {
	all := make([]paper.Paper, 0)
	q := `SELECT ` + paperColumns + ` FROM papers ORDER BY position, id`
	if err := repo.db.SelectContext(ctx, &all, q); err != nil {
		return nil, dbError(repo.db, err, "selecting papers")
	}
	return all, nil
}

func (repo *paperRepository) GetPaper(ctx context.Context, id string) (paper.Paper, error) {
	var p paper.Paper
	q := repo.db.Rebind(`SELECT ` + paperColumns + ` FROM papers WHERE id = ?`)
	if err := repo.db.GetContext(ctx, &p, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return paper.Paper{}, paper.ErrNotFound
		}
		return paper.Paper{}, dbError(repo.db, err, "selecting paper")
	}
	return p, nil
}

func (repo *paperRepository) CreatePaper(ctx context.Context, p paper.Paper) (paper.Paper, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	q := `INSERT INTO papers (position, ` + paperColumns + `)
		VALUES (
			(SELECT COALESCE(MAX(position), 0) + 1 FROM papers),
			:id, :subject, :year, :semester, :exam_type, :department
		)`
	if _, err := repo.db.NamedExecContext(ctx, q, p); err != nil {
		return paper.Paper{}, dbError(repo.db, err, "inserting paper")
	}
	return p, nil
}

func (repo *paperRepository) CountPapers(ctx context.Context) (int, error) {
	var n int
	if err := repo.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM papers`); err != nil {
		return 0, dbError(repo.db, err, "counting papers")
	}
	return n, nil
}
