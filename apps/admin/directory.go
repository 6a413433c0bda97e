package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/trezcool/portal/core/directory"
)

// applyCriteria sets the query and every given criterion on b, in a stable order.
func applyCriteria[E directory.Entity](b *directory.Browser[E], criteria map[string]string, search string) (directory.Result[E], error) {
	dims := make([]string, 0, len(criteria))
	for dim := range criteria {
		dims = append(dims, dim)
	}
	sort.Strings(dims)

	res := b.SetQuery(search)
	for _, dim := range dims {
		if criteria[dim] == "" {
			continue
		}
		var err error
		if res, err = b.SetCriterion(dim, criteria[dim]); err != nil {
			return res, err
		}
	}
	return res, nil
}

func (cli *commandLine) browseAlumni(criteria map[string]string, search string, asJSON bool) error {
	b, err := cli.alumniSvc.Browser(cliContext())
	if err != nil {
		return err
	}
	res, err := applyCriteria(b, criteria, search)
	if err != nil {
		return err
	}

	if cli.jsonOutput(asJSON) {
		return json.NewEncoder(cli.out).Encode(res)
	}
	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tBATCH\tDEPT\tROLE\tCOMPANY\tLOCATION\tONLINE")
	for _, a := range res.Records {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\t%t\n", a.ID, a.Name, a.Batch, a.Department, a.Role, a.Company, a.Location, a.IsOnline)
	}
	fmt.Fprintf(w, "\nShowing %d of %d alumni\n", res.Count, res.Total)
	return w.Flush()
}

func (cli *commandLine) browsePapers(criteria map[string]string, search string, asJSON bool) error {
	b, err := cli.paperSvc.Browser(cliContext())
	if err != nil {
		return err
	}
	res, err := applyCriteria(b, criteria, search)
	if err != nil {
		return err
	}

	if cli.jsonOutput(asJSON) {
		return json.NewEncoder(cli.out).Encode(res)
	}
	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSUBJECT\tYEAR\tSEMESTER\tEXAM\tDEPT")
	for _, p := range res.Records {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n", p.ID, p.Subject, p.Year, p.Semester, p.ExamType, p.Department)
	}
	fmt.Fprintf(w, "\nShowing %d of %d papers\n", res.Count, res.Total)
	return w.Flush()
}
