package paper

import (
	"context"
	"strconv"

	"github.com/pkg/errors"

	"github.com/trezcool/portal/core"
	"github.com/trezcool/portal/core/directory"
)

var (
	// errors
	ErrNotFound = errors.New("paper not found")
)

type (
	// Repository provides the question paper record set.
	Repository interface {
		// QueryPapers returns every paper in insertion order.
		QueryPapers(ctx context.Context) ([]Paper, error)
		GetPaper(ctx context.Context, id string) (Paper, error)
		CreatePaper(ctx context.Context, p Paper) (Paper, error)
		CountPapers(ctx context.Context) (int, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Filter returns the papers matching filter, in archive order.
// filter is expected to be validated already.
func (svc *Service) Filter(ctx context.Context, filter QueryFilter) (directory.Result[Paper], error) {
	all, err := svc.repo.QueryPapers(ctx)
	if err != nil {
		return directory.Result[Paper]{}, errors.Wrap(err, "querying papers")
	}
	return directory.Apply(all, filter.Criteria()), nil
}

// Browser returns a directory browser over the current papers.
func (svc *Service) Browser(ctx context.Context) (*directory.Browser[Paper], error) {
	all, err := svc.repo.QueryPapers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying papers")
	}
	return directory.NewBrowser(Schema, all), nil
}

func (svc *Service) GetByID(ctx context.Context, id string) (Paper, error) {
	id = core.CleanString(id)
	if id == "" {
		return Paper{}, ErrNotFound
	}
	return svc.repo.GetPaper(ctx, id)
}

// Create archives a new paper. Department may be DepartmentCommon.
func (svc *Service) Create(ctx context.Context, p Paper) (Paper, error) {
	p.Subject = core.CleanString(p.Subject)

	var flds []core.FieldError
	if p.Subject == "" {
		flds = append(flds, core.FieldError{Field: "subject", Error: "this field is required"})
	}
	if p.Department != DepartmentCommon && !allows(DimDepartment, p.Department) {
		flds = append(flds, core.FieldError{Field: "department", Error: departmentText})
	}
	if !allows(DimYear, strconv.Itoa(p.Year)) {
		flds = append(flds, core.FieldError{Field: "year", Error: yearText})
	}
	if !allows(DimSemester, p.Semester) {
		flds = append(flds, core.FieldError{Field: "semester", Error: semesterText})
	}
	if !allows(DimExamType, p.ExamType) {
		flds = append(flds, core.FieldError{Field: "exam_type", Error: examTypeText})
	}
	if flds != nil {
		return Paper{}, core.NewValidationError(nil, flds...)
	}
	return svc.repo.CreatePaper(ctx, p)
}

func (svc *Service) Count(ctx context.Context) (int, error) {
	return svc.repo.CountPapers(ctx)
}

// allows reports whether value is a concrete (non-sentinel) value of dimension.
func allows(dimension, value string) bool {
	dim, ok := Schema.Dimension(dimension)
	return ok && !directory.IsAll(value) && dim.Allows(value)
}
