package dig_container

import (
	"context"
	"fmt"
	"log"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/trezcool/portal/apps/api/echo"
	"github.com/trezcool/portal/core"
	"github.com/trezcool/portal/core/alumni"
	"github.com/trezcool/portal/core/conversation"
	"github.com/trezcool/portal/core/paper"
	logsvc "github.com/trezcool/portal/services/logger"
	"github.com/trezcool/portal/storage/database"
	"github.com/trezcool/portal/storage/database/fixtures"
	inmemdb "github.com/trezcool/portal/storage/database/inmem"
	sqlxrepos "github.com/trezcool/portal/storage/database/sqlx"
)

type DBLoggerParam struct {
	dig.In
	Logger core.Logger `name:"dbLogger"`
}

// Repositories are the data providers of the directory pages.
// DB is nil when the in-memory engine is used.
type Repositories struct {
	dig.Out
	DB         *sqlx.DB
	AlumniRepo alumni.Repository
	PaperRepo  paper.Repository
}

type serverParams struct {
	dig.In
	Conf            *core.Config
	Logger          core.Logger
	AlumniSvc       *alumni.Service
	PaperSvc        *paper.Service
	ConversationSvc *conversation.Service
	Validate        *validator.Validate
	Translator      ut.Translator
}

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "API : ", log.LstdFlags)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newDBLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

func setUpDB(conf *core.Config) (*sqlx.DB, error) {
	if err := database.CreateIfNotExist(conf); err != nil {
		return nil, err
	}

	db, err := database.Open(conf)
	if err != nil {
		return nil, err
	}

	if err = database.Migrate(db.DB, conf.Database.Engine); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func newRepositories(conf *core.Config, loggerParam DBLoggerParam) Repositories {
	logger := loggerParam.Logger
	var repos Repositories

	if conf.Database.IsSQL() {
		db, err := setUpDB(conf)
		if err != nil {
			logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
		}
		repos.DB = db
		repos.AlumniRepo = sqlxrepos.NewAlumniRepository(db)
		repos.PaperRepo = sqlxrepos.NewPaperRepository(db)
	} else {
		db := inmemdb.Open()
		repos.AlumniRepo = inmemdb.NewAlumniRepository(db)
		repos.PaperRepo = inmemdb.NewPaperRepository(db)
	}

	if err := database.Seed(context.Background(), repos.AlumniRepo, repos.PaperRepo); err != nil {
		logger.Fatal(fmt.Sprintf("seeding database: %v", err), err)
	}
	return repos
}

func newRegistry() *conversation.Registry {
	return conversation.NewRegistry(conversation.WithTranscript(fixtures.Transcript()))
}

func newConversationService(alumniSvc *alumni.Service, registry *conversation.Registry) *conversation.Service {
	return conversation.NewService(alumniSvc, registry)
}

func newServer(p serverParams) *echoapi.Server {
	return echoapi.NewServer(echoapi.ServerDeps{
		Conf:            p.Conf,
		Logger:          p.Logger,
		AlumniSvc:       p.AlumniSvc,
		PaperSvc:        p.PaperSvc,
		ConversationSvc: p.ConversationSvc,
		Validate:        p.Validate,
		Translator:      p.Translator,
	})
}

// New returns a new dependency injection dig.Container
func New(newConfig func() *core.Config) *dig.Container {
	c := dig.New()

	must(c.Provide(newConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newDBLogger, dig.Name("dbLogger")))
	must(c.Provide(newRepositories))
	must(c.Provide(validator.New))
	must(c.Provide(core.NewTranslator))
	must(c.Provide(alumni.NewService))
	must(c.Provide(paper.NewService))
	must(c.Provide(newRegistry))
	must(c.Provide(newConversationService))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
