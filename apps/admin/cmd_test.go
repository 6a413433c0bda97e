package main

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"testing"

	"github.com/trezcool/portal/core"
	"github.com/trezcool/portal/core/alumni"
	"github.com/trezcool/portal/core/directory"
	"github.com/trezcool/portal/core/paper"
	inmemdb "github.com/trezcool/portal/storage/database/inmem"
	sqlxrepos "github.com/trezcool/portal/storage/database/sqlx"
	"github.com/trezcool/portal/tests"
)

func setup(t *testing.T) (*commandLine, *bytes.Buffer) {
	// set up DB & repos
	db := testutil.PrepareDB(t)

	// start CLI
	var out bytes.Buffer
	cli := newCommandLine(core.EngineSQLite, db, sqlxrepos.NewAlumniRepository(db), sqlxrepos.NewPaperRepository(db), &out)
	return cli, &out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	extra      interface{}
}

func checkErr(t *testing.T, tt cliTest, err error) {
	t.Helper()
	if err == nil {
		if tt.wantErr != nil || tt.wantErrStr != "" {
			t.Errorf("cli.run() error = nil, wantErr %v%s", tt.wantErr, tt.wantErrStr)
		}
		return
	}
	if tt.wantErr != nil {
		if err != tt.wantErr {
			t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
		}
	} else if tt.wantErrStr != "" {
		if err.Error() != tt.wantErrStr {
			t.Errorf("cli.run() error.Error() = %s, wantErrStr %s", err.Error(), tt.wantErrStr)
		}
	} else {
		t.Errorf("cli.run() unexpected error = %v", err)
	}
}

func Test_commandLine_usage(t *testing.T) {
	cli, _ := setup(t)

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "bad flag", args: []string{"alumni", "-lol"}, wantErr: errHelp},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			checkErr(t, tt, cli.run(args))
		})
	}
}

func Test_commandLine_migrate(t *testing.T) {
	cli, _ := setup(t)

	gooseRunFunc = func(command string, db *sql.DB, fsys fs.FS, dir string, args ...string) error {
		switch command {
		case "up", "up-by-one", "down", "fix", "redo", "reset", "status", "version": // pass
		case "up-to", "down-to":
			if len(args) == 0 {
				return fmt.Errorf("%s must be of form: goose [OPTIONS] DRIVER DBSTRING %s VERSION", command, command)
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return fmt.Errorf("version must be a number (got '%s')", args[0])
			}
		case "create":
			if len(args) == 0 {
				return fmt.Errorf("create must be of form: goose [OPTIONS] DRIVER DBSTRING create NAME [go|sql]")
			}
		default:
			return fmt.Errorf("%q: no such command", command)
		}
		return nil
	}

	tests := []cliTest{
		{name: "no subcommand", args: []string{"migrate"}, wantErr: errHelp},
		{name: "unknown subcommand", args: []string{"migrate", "lol"}, wantErrStr: "\"lol\": no such command"},
		{name: "up-to: no args", args: []string{"migrate", "up-to"}, wantErrStr: "up-to must be of form: goose [OPTIONS] DRIVER DBSTRING up-to VERSION"},
		{name: "up-to: non-int arg", args: []string{"migrate", "up-to", "lol"}, wantErrStr: "version must be a number (got 'lol')"},
		{name: "create: no args", args: []string{"migrate", "create"}, wantErrStr: "create must be of form: goose [OPTIONS] DRIVER DBSTRING create NAME [go|sql]"},
		{name: "down-to: no args", args: []string{"migrate", "down-to"}, wantErrStr: "down-to must be of form: goose [OPTIONS] DRIVER DBSTRING down-to VERSION"},
		{name: "up", args: []string{"migrate", "up"}},
		{name: "up-to", args: []string{"migrate", "up-to", "2"}},
		{name: "down", args: []string{"migrate", "down"}},
		{name: "down-to", args: []string{"migrate", "down-to", "1"}},
		{name: "status", args: []string{"migrate", "status"}},
		{name: "create", args: []string{"migrate", "create", "events", "sql"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			checkErr(t, tt, cli.run(args))
		})
	}

	t.Run("in-memory engine", func(t *testing.T) {
		mem := inmemdb.Open()
		var out bytes.Buffer
		memCli := newCommandLine(core.EngineInMem, nil, inmemdb.NewAlumniRepository(mem), inmemdb.NewPaperRepository(mem), &out)
		checkErr(t, cliTest{wantErr: errNoSQL}, memCli.run([]string{"admin", "migrate", "up"}))
	})
}

func Test_commandLine_seed(t *testing.T) {
	cli, _ := setup(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := cli.run([]string{"admin", "seed"}); err != nil {
			t.Fatalf("cli.run(seed) error = %v", err)
		}
	}

	if n, _ := cli.alumniRepo.CountAlumni(ctx); n != 8 {
		t.Errorf("CountAlumni() = %d, want 8", n)
	}
	if n, _ := cli.paperRepo.CountPapers(ctx); n != 12 {
		t.Errorf("CountPapers() = %d, want 12", n)
	}
}

func Test_commandLine_alumni(t *testing.T) {
	cli, out := setup(t)
	if err := cli.run([]string{"admin", "seed"}); err != nil {
		t.Fatalf("cli.run(seed) error = %v", err)
	}
	isTerminalFunc = func(int) bool { return false }

	tests := []cliTest{
		{name: "all", args: []string{"alumni"}, extra: []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{name: "department", args: []string{"alumni", "-department", "CSE"}, extra: []string{"1", "3", "6", "8"}},
		{name: "search and online", args: []string{"alumni", "-search", "engineer", "-online", "false"}, extra: []string{"5"}},
		{name: "no match", args: []string{"alumni", "-search", "nobody"}, extra: []string{}},
		{name: "invalid department", args: []string{"alumni", "-department", "Law"}, wantErrStr: "invalid criteria"},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			err := cli.run(args)
			checkErr(t, tt, err)
			if err != nil {
				return
			}

			var res directory.Result[alumni.Alumnus]
			if err := json.Unmarshal(out.Bytes(), &res); err != nil {
				t.Fatalf("json.Unmarshal() error = %v; out %s", err, out.String())
			}
			ids := make([]string, 0, len(res.Records))
			for _, a := range res.Records {
				ids = append(ids, a.ID)
			}
			if want := tt.extra.([]string); strings.Join(ids, ",") != strings.Join(want, ",") {
				t.Errorf("ids = %v, want %v", ids, want)
			}
			if res.Total != 8 {
				t.Errorf("total = %d, want 8", res.Total)
			}
		})
	}
}

func Test_commandLine_papers(t *testing.T) {
	cli, out := setup(t)
	if err := cli.run([]string{"admin", "seed"}); err != nil {
		t.Fatalf("cli.run(seed) error = %v", err)
	}

	t.Run("json", func(t *testing.T) {
		isTerminalFunc = func(int) bool { return true }
		out.Reset()
		if err := cli.run([]string{"admin", "papers", "-json", "-exam", paper.ExamMidSem, "-year", "2024"}); err != nil {
			t.Fatalf("cli.run() error = %v", err)
		}
		var res directory.Result[paper.Paper]
		if err := json.Unmarshal(out.Bytes(), &res); err != nil {
			t.Fatalf("json.Unmarshal() error = %v", err)
		}
		if res.Count != 2 || res.Records[0].Subject != "Digital Electronics" || res.Records[1].Subject != "Fluid Mechanics" {
			t.Errorf("unexpected result %+v", res)
		}
	})

	t.Run("table", func(t *testing.T) {
		isTerminalFunc = func(int) bool { return true }
		out.Reset()
		if err := cli.run([]string{"admin", "papers", "-search", "systems", "-department", "ECE"}); err != nil {
			t.Fatalf("cli.run() error = %v", err)
		}
		got := out.String()
		if !strings.Contains(got, "Signals and Systems") {
			t.Errorf("table misses the matching paper:\n%s", got)
		}
		if strings.Contains(got, "Control Systems") {
			t.Errorf("table shows a filtered-out paper:\n%s", got)
		}
		if !strings.Contains(got, "Showing 1 of 12 papers") {
			t.Errorf("table misses the summary:\n%s", got)
		}
	})

	t.Run("invalid semester", func(t *testing.T) {
		err := cli.run([]string{"admin", "papers", "-semester", "9th"})
		if !core.IsValidationError(err) {
			t.Errorf("cli.run() error = %v, want a validation error", err)
		}
	})
}

func Test_openRepositories_inmem(t *testing.T) {
	conf := testutil.NewConfig(core.EngineInMem)
	db, alumniRepo, paperRepo, err := openRepositories(conf)
	if err != nil {
		t.Fatalf("openRepositories() error = %v", err)
	}
	if db != nil {
		t.Errorf("openRepositories() db = %v, want nil", db)
	}

	var out bytes.Buffer
	cli := newCommandLine(conf.Database.Engine, db, alumniRepo, paperRepo, &out)
	isTerminalFunc = func(int) bool { return false }

	if err := cli.run([]string{"admin", "alumni"}); err != nil {
		t.Fatalf("cli.run(alumni) error = %v", err)
	}
	var alumniRes directory.Result[alumni.Alumnus]
	if err := json.Unmarshal(out.Bytes(), &alumniRes); err != nil {
		t.Fatalf("json.Unmarshal() error = %v; out %s", err, out.String())
	}
	if alumniRes.Count != 8 || alumniRes.Total != 8 {
		t.Errorf("alumni count/total = %d/%d, want 8/8", alumniRes.Count, alumniRes.Total)
	}

	out.Reset()
	if err := cli.run([]string{"admin", "papers"}); err != nil {
		t.Fatalf("cli.run(papers) error = %v", err)
	}
	var paperRes directory.Result[paper.Paper]
	if err := json.Unmarshal(out.Bytes(), &paperRes); err != nil {
		t.Fatalf("json.Unmarshal() error = %v; out %s", err, out.String())
	}
	if paperRes.Total != 12 {
		t.Errorf("papers total = %d, want 12", paperRes.Total)
	}
}
