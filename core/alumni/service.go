package alumni

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/portal/core"
	"github.com/trezcool/portal/core/conversation"
	"github.com/trezcool/portal/core/directory"
)

var (
	// errors
	ErrNotFound = errors.New("alumnus not found")
)

type (
	// Repository provides the alumni record set.
	Repository interface {
		// QueryAlumni returns every alumnus in insertion order.
		QueryAlumni(ctx context.Context) ([]Alumnus, error)
		GetAlumnus(ctx context.Context, id string) (Alumnus, error)
		CreateAlumnus(ctx context.Context, a Alumnus) (Alumnus, error)
		CountAlumni(ctx context.Context) (int, error)
	}

	Service struct {
		repo Repository
	}
)

var _ conversation.ParticipantFinder = (*Service)(nil) // interface compliance check

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Filter returns the alumni matching filter, in directory order.
// filter is expected to be validated already.
func (svc *Service) Filter(ctx context.Context, filter QueryFilter) (directory.Result[Alumnus], error) {
	all, err := svc.repo.QueryAlumni(ctx)
	if err != nil {
		return directory.Result[Alumnus]{}, errors.Wrap(err, "querying alumni")
	}
	return directory.Apply(all, filter.Criteria()), nil
}

// Browser returns a directory browser over the current alumni set.
func (svc *Service) Browser(ctx context.Context) (*directory.Browser[Alumnus], error) {
	all, err := svc.repo.QueryAlumni(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying alumni")
	}
	return directory.NewBrowser(Schema, all), nil
}

func (svc *Service) GetByID(ctx context.Context, id string) (Alumnus, error) {
	id = core.CleanString(id)
	if id == "" {
		return Alumnus{}, ErrNotFound
	}
	return svc.repo.GetAlumnus(ctx, id)
}

func (svc *Service) Create(ctx context.Context, a Alumnus) (Alumnus, error) {
	a.Name = core.CleanString(a.Name)
	if a.Name == "" {
		return Alumnus{}, core.NewValidationError(nil, core.FieldError{Field: "name", Error: "this field is required"})
	}
	if dim, _ := Schema.Dimension(DimDepartment); !dim.Allows(a.Department) || directory.IsAll(a.Department) {
		return Alumnus{}, core.NewValidationError(nil, core.FieldError{Field: "department", Error: departmentText})
	}
	return svc.repo.CreateAlumnus(ctx, a)
}

func (svc *Service) Count(ctx context.Context) (int, error) {
	return svc.repo.CountAlumni(ctx)
}

// FindParticipant resolves an alumnus to a conversation participant.
func (svc *Service) FindParticipant(ctx context.Context, id string) (conversation.Participant, error) {
	a, err := svc.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return conversation.Participant{}, conversation.ErrParticipantNotFound
		}
		return conversation.Participant{}, errors.Wrap(err, "finding alumnus")
	}
	return conversation.Participant{
		ID:       a.ID,
		Name:     a.Name,
		Headline: a.Role + " at " + a.Company,
		IsOnline: a.IsOnline,
	}, nil
}
