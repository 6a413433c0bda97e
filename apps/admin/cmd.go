package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jmoiron/sqlx"
	"golang.org/x/term"

	"github.com/trezcool/portal/core/alumni"
	"github.com/trezcool/portal/core/paper"
)

var (
	isTerminalFunc = term.IsTerminal // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	engine     string
	db         *sqlx.DB // nil with the in-memory engine
	alumniRepo alumni.Repository
	paperRepo  paper.Repository
	alumniSvc  *alumni.Service
	paperSvc   *paper.Service
	out        io.Writer
	outFd      int
}

func newCommandLine(engine string, db *sqlx.DB, alumniRepo alumni.Repository, paperRepo paper.Repository, out io.Writer) *commandLine {
	return &commandLine{
		engine:     engine,
		db:         db,
		alumniRepo: alumniRepo,
		paperRepo:  paperRepo,
		alumniSvc:  alumni.NewService(alumniRepo),
		paperSvc:   paper.NewService(paperRepo),
		out:        out,
		outFd:      int(os.Stdout.Fd()),
	}
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  migrate COMMAND [ARGS] - run a goose migration command (up, down, status, ...)")
	fmt.Fprintln(cli.out, "  seed - load the starter alumni and papers into empty tables")
	fmt.Fprintln(cli.out, "  alumni [-search TEXT] [-department DEPT] [-online true|false] [-json] - browse the alumni directory")
	fmt.Fprintln(cli.out, "  papers [-search TEXT] [-department DEPT] [-year YEAR] [-semester SEM] [-exam TYPE] [-json] - browse question papers")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	alumniCmd := flag.NewFlagSet("alumni", flag.ContinueOnError)
	alumniSearch := alumniCmd.String("search", "", "Text to look for in name, company, department, role or location.")
	alumniDept := alumniCmd.String("department", "", "Department (CSE, ECE, EE, ME, CE or all).")
	alumniOnline := alumniCmd.String("online", "", "Online status (true, false or all).")
	alumniJSON := alumniCmd.Bool("json", false, "Print JSON even on a terminal.")

	papersCmd := flag.NewFlagSet("papers", flag.ContinueOnError)
	papersSearch := papersCmd.String("search", "", "Text to look for in the subject.")
	papersDept := papersCmd.String("department", "", "Department (CSE, ECE, EE, ME, CE or all).")
	papersYear := papersCmd.String("year", "", "Year (2024, 2023, 2022, 2021 or all).")
	papersSem := papersCmd.String("semester", "", "Semester (1st..8th or all).")
	papersExam := papersCmd.String("exam", "", "Exam type (Mid Sem, End Sem or all).")
	papersJSON := papersCmd.Bool("json", false, "Print JSON even on a terminal.")

	for _, fs := range []*flag.FlagSet{alumniCmd, papersCmd} {
		fs.SetOutput(cli.out)
	}

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	case "seed":
		return cli.seed()
	case "alumni":
		if err := alumniCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.browseAlumni(map[string]string{
			alumni.DimDepartment: *alumniDept,
			alumni.DimOnline:     *alumniOnline,
		}, *alumniSearch, *alumniJSON)
	case "papers":
		if err := papersCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.browsePapers(map[string]string{
			paper.DimDepartment: *papersDept,
			paper.DimYear:       *papersYear,
			paper.DimSemester:   *papersSem,
			paper.DimExamType:   *papersExam,
		}, *papersSearch, *papersJSON)
	default:
		cli.printUsage()
		return errHelp
	}
}

// jsonOutput reports whether results are printed as JSON rather than as a table.
func (cli *commandLine) jsonOutput(forced bool) bool {
	return forced || !isTerminalFunc(cli.outFd)
}

func cliContext() context.Context {
	return context.Background()
}
