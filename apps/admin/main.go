package main

import (
	"log"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/portal/core"
	"github.com/trezcool/portal/core/alumni"
	"github.com/trezcool/portal/core/paper"
	logsvc "github.com/trezcool/portal/services/logger"
	"github.com/trezcool/portal/storage/database"
	inmemdb "github.com/trezcool/portal/storage/database/inmem"
	sqlxrepos "github.com/trezcool/portal/storage/database/sqlx"
)

func main() {
	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile), conf)
	logger.Enable(!conf.Debug)

	// set up DB
	db, alumniRepo, paperRepo, err := openRepositories(conf)
	if err != nil {
		logger.Fatal("setting up database", err)
	}

	// start CLI
	cli := newCommandLine(conf.Database.Engine, db, alumniRepo, paperRepo, os.Stdout)
	err = cli.run(os.Args)
	if db != nil {
		_ = db.Close()
	}
	if err != nil {
		if err != errHelp {
			logger.Error("command failed", err)
		}
		os.Exit(1)
	}
}

// openRepositories opens the configured store. db is nil with the in-memory engine,
// which is seeded since it only lives as long as the command.
func openRepositories(conf *core.Config) (*sqlx.DB, alumni.Repository, paper.Repository, error) {
	if conf.Database.IsSQL() {
		if err := database.CreateIfNotExist(conf); err != nil {
			return nil, nil, nil, errors.Wrap(err, "creating database")
		}
		db, err := database.Open(conf)
		if err != nil {
			return nil, nil, nil, errors.Wrap(err, "opening database")
		}
		return db, sqlxrepos.NewAlumniRepository(db), sqlxrepos.NewPaperRepository(db), nil
	}

	mem := inmemdb.Open()
	alumniRepo := inmemdb.NewAlumniRepository(mem)
	paperRepo := inmemdb.NewPaperRepository(mem)
	if err := database.Seed(cliContext(), alumniRepo, paperRepo); err != nil {
		return nil, nil, nil, errors.Wrap(err, "seeding in-memory database")
	}
	return nil, alumniRepo, paperRepo, nil
}
