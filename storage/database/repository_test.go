package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/portal/core"
	"github.com/trezcool/portal/core/alumni"
	"github.com/trezcool/portal/core/paper"
	"github.com/trezcool/portal/storage/database"
	"github.com/trezcool/portal/storage/database/fixtures"
	inmemdb "github.com/trezcool/portal/storage/database/inmem"
	sqlxrepos "github.com/trezcool/portal/storage/database/sqlx"
	"github.com/trezcool/portal/tests"
)

type repos struct {
	alumni alumni.Repository
	papers paper.Repository
}

var engines = map[string]func(t *testing.T) repos{
	"inmem": func(*testing.T) repos {
		db := inmemdb.Open()
		return repos{alumni: inmemdb.NewAlumniRepository(db), papers: inmemdb.NewPaperRepository(db)}
	},
	"sqlite": func(t *testing.T) repos {
		db := testutil.PrepareDB(t)
		return repos{alumni: sqlxrepos.NewAlumniRepository(db), papers: sqlxrepos.NewPaperRepository(db)}
	},
}

func TestAlumniRepository(t *testing.T) {
	ctx := context.Background()
	for name, open := range engines {
		t.Run(name, func(t *testing.T) {
			repo := open(t).alumni

			n, err := repo.CountAlumni(ctx)
			require.NoError(t, err)
			assert.Zero(t, n)

			all, err := repo.QueryAlumni(ctx)
			require.NoError(t, err)
			assert.NotNil(t, all)
			assert.Empty(t, all)

			zoe := testutil.CreateAlumnus(t, repo, "Zoe", "ME", true)
			adam := testutil.CreateAlumnus(t, repo, "Adam", "CSE", false)
			assert.NotEmpty(t, zoe.ID)
			assert.NotEqual(t, zoe.ID, adam.ID)

			all, err = repo.QueryAlumni(ctx)
			require.NoError(t, err)
			assert.Equal(t, []alumni.Alumnus{zoe, adam}, all, "insertion order is kept")

			got, err := repo.GetAlumnus(ctx, adam.ID)
			require.NoError(t, err)
			assert.Equal(t, adam, got)

			_, err = repo.GetAlumnus(ctx, "missing")
			assert.Equal(t, alumni.ErrNotFound, err)

			_, err = repo.CreateAlumnus(ctx, zoe)
			assert.Error(t, err, "ids are unique")

			n, err = repo.CountAlumni(ctx)
			require.NoError(t, err)
			assert.Equal(t, 2, n)
		})
	}
}

func TestPaperRepository(t *testing.T) {
	ctx := context.Background()
	for name, open := range engines {
		t.Run(name, func(t *testing.T) {
			repo := open(t).papers

			ds := testutil.CreatePaper(t, repo, "Data Structures", "CSE", 2024, "3rd", paper.ExamEndSem)
			maths := testutil.CreatePaper(t, repo, "Mathematics", paper.DepartmentCommon, 2023, "1st", paper.ExamMidSem)

			all, err := repo.QueryPapers(ctx)
			require.NoError(t, err)
			assert.Equal(t, []paper.Paper{ds, maths}, all)

			got, err := repo.GetPaper(ctx, maths.ID)
			require.NoError(t, err)
			assert.Equal(t, maths, got)

			_, err = repo.GetPaper(ctx, "missing")
			assert.Equal(t, paper.ErrNotFound, err)

			n, err := repo.CountPapers(ctx)
			require.NoError(t, err)
			assert.Equal(t, 2, n)
		})
	}
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	for name, open := range engines {
		t.Run(name, func(t *testing.T) {
			r := open(t)

			require.NoError(t, database.Seed(ctx, r.alumni, r.papers))
			require.NoError(t, database.Seed(ctx, r.alumni, r.papers), "seeding twice is a no-op")

			all, err := r.alumni.QueryAlumni(ctx)
			require.NoError(t, err)
			assert.Equal(t, fixtures.Alumni(), all)

			papers, err := r.papers.QueryPapers(ctx)
			require.NoError(t, err)
			assert.Equal(t, fixtures.Papers(), papers)
		})
	}
}

func TestDialect(t *testing.T) {
	assert.Equal(t, "sqlite3", database.Dialect("sqlite"))
	assert.Equal(t, "postgres", database.Dialect("postgres"))
}

func TestSQLRepositories_connectionLost(t *testing.T) {
	ctx := context.Background()
	db := testutil.PrepareDB(t)
	alumniRepo := sqlxrepos.NewAlumniRepository(db)
	paperRepo := sqlxrepos.NewPaperRepository(db)

	_, err := alumniRepo.CountAlumni(ctx)
	require.NoError(t, err)

	require.NoError(t, db.Close())

	_, err = alumniRepo.QueryAlumni(ctx)
	require.Error(t, err)
	assert.True(t, core.IsShutdown(err), err.Error())

	_, err = paperRepo.CountPapers(ctx)
	require.Error(t, err)
	assert.True(t, core.IsShutdown(err), err.Error())
}

func TestSQLRepositories_queryErrorIsNotShutdown(t *testing.T) {
	ctx := context.Background()
	db := testutil.PrepareDB(t)
	_, err := db.ExecContext(ctx, `DROP TABLE papers`)
	require.NoError(t, err)

	_, err = sqlxrepos.NewPaperRepository(db).QueryPapers(ctx)
	require.Error(t, err)
	assert.False(t, core.IsShutdown(err), err.Error())
}
