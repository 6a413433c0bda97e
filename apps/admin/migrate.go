package main

import (
	"github.com/pkg/errors"
	"github.com/trezcool/goose"

	appfs "github.com/trezcool/portal/fs"
	"github.com/trezcool/portal/storage/database"
)

var (
	gooseRunFunc = goose.RunFS // mockable

	errNoSQL = errors.New("migrations need a SQL database engine")
)

func (cli *commandLine) migrate(args []string) error {
	if cli.db == nil {
		return errNoSQL
	}
	if err := goose.SetDialect(database.Dialect(cli.engine)); err != nil {
		return errors.Wrap(err, "setting migration dialect")
	}

	arguments := make([]string, 0)
	if len(args) > 1 {
		arguments = append(arguments, args[1:]...)
	}
	return gooseRunFunc(args[0], cli.db.DB, appfs.FS, "migrations", arguments...)
}

func (cli *commandLine) seed() error {
	return database.Seed(cliContext(), cli.alumniRepo, cli.paperRepo)
}
