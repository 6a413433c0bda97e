package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/portal/core/alumni"
)

const alumniColumns = `id, name, batch, department, company, role, location, avatar, is_online`

type alumniRepository struct {
	db *sqlx.DB
}

var _ alumni.Repository = (*alumniRepository)(nil) // interface compliance check

func NewAlumniRepository(db *sqlx.DB) alumni.Repository {
	return &alumniRepository{db: db}
}

func (repo *alumniRepository) QueryAlumni(ctx context.Context) ([]alumni.Alumnus, error) {
	all := make([]alumni.Alumnus, 0)
	q := `SELECT ` + alumniColumns + ` FROM alumni ORDER BY position, id`
	if err := repo.db.SelectContext(ctx, &all, q); err != nil {
		return nil, dbError(repo.db, err, "selecting alumni")
	}
	return all, nil
}

func (repo *alumniRepository) GetAlumnus(ctx context.Context, id string) (alumni.Alumnus, error) {
	var a alumni.Alumnus
	q := repo.db.Rebind(`SELECT ` + alumniColumns + ` FROM alumni WHERE id = ?`)
	if err := repo.db.GetContext(ctx, &a, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return alumni.Alumnus{}, alumni.ErrNotFound
		}
		return alumni.Alumnus{}, dbError(repo.db, err, "selecting alumnus")
	}
	return a, nil
}

func (repo *alumniRepository) CreateAlumnus(ctx context.Context, a alumni.Alumnus) (alumni.Alumnus, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	q := `INSERT INTO alumni (position, ` + alumniColumns + `)
		VALUES (
			(SELECT COALESCE(MAX(position), 0) + 1 FROM alumni),
			:id, :name, :batch, :department, :company, :role, :location, :avatar, :is_online
		)`
	if _, err := repo.db.NamedExecContext(ctx, q, a); err != nil {
		return alumni.Alumnus{}, dbError(repo.db, err, "inserting alumnus")
	}
	return a, nil
}

func (repo *alumniRepository) CountAlumni(ctx context.Context) (int, error) {
	var n int
	if err := repo.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM alumni`); err != nil {
		return 0, dbError(repo.db, err, "counting alumni")
	}
	return n, nil
}
