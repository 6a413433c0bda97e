package database

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/portal/core/alumni"
	"github.com/trezcool/portal/core/paper"
	"github.com/trezcool/portal/storage/database/fixtures"
)

// Seed loads the starter alumni and papers into empty tables.
// Tables that already hold rows are left alone.
func Seed(ctx context.Context, alumniRepo alumni.Repository, paperRepo paper.Repository) error {
	n, err := alumniRepo.CountAlumni(ctx)
	if err != nil {
		return errors.Wrap(err, "counting alumni")
	}
	if n == 0 {
		for _, a := range fixtures.Alumni() {
			if _, err := alumniRepo.CreateAlumnus(ctx, a); err != nil {
				return errors.Wrap(err, "seeding alumni")
			}
		}
	}

	if n, err = paperRepo.CountPapers(ctx); err != nil {
		return errors.Wrap(err, "counting papers")
	}
	if n == 0 {
		for _, p := range fixtures.Papers() {
			if _, err := paperRepo.CreatePaper(ctx, p); err != nil {
				return errors.Wrap(err, "seeding papers")
			}
		}
	}
	return nil
}
