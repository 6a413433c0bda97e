package testutil

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/portal/core"
	"github.com/trezcool/portal/core/alumni"
	"github.com/trezcool/portal/core/paper"
	"github.com/trezcool/portal/storage/database"
)

// NewConfig returns a test configuration backed by engine.
func NewConfig(engine string) *core.Config {
	return &core.Config{
		AppName:  "Portal",
		Env:      "TEST",
		Debug:    true,
		TestMode: true,
		WorkDir:  core.Getwd(),
		Database: core.DatabaseConfig{Engine: engine, Path: ":memory:"},
	}
}

// PrepareDB opens a migrated in-memory sqlite database, closed when the test ends.
func PrepareDB(t *testing.T) *sqlx.DB {
	t.Helper()
	conf := NewConfig(core.EngineSQLite)

	db, err := database.Open(conf)
	if err != nil {
		t.Fatalf("database.Open() failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err = database.Migrate(db.DB, conf.Database.Engine); err != nil {
		t.Fatalf("database.Migrate() failed: %v", err)
	}
	return db
}

func CreateAlumnus(t *testing.T, repo alumni.Repository, name, dept string, online bool) alumni.Alumnus {
	t.Helper()
	a, err := repo.CreateAlumnus(context.Background(), alumni.Alumnus{
		Name:       name,
		Department: dept,
		Company:    "Acme",
		Role:       "Engineer",
		IsOnline:   online,
	})
	if err != nil {
		t.Fatalf("createAlumnus() failed: %v", err)
	}
	return a
}

func CreatePaper(t *testing.T, repo paper.Repository, subject, dept string, year int, sem, exam string) paper.Paper {
	t.Helper()
	p, err := repo.CreatePaper(context.Background(), paper.Paper{
		Subject:    subject,
		Department: dept,
		Year:       year,
		Semester:   sem,
		ExamType:   exam,
	})
	if err != nil {
		t.Fatalf("createPaper() failed: %v", err)
	}
	return p
}
