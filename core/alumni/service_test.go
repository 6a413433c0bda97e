package alumni_test

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/portal/core"
	"github.com/trezcool/portal/core/alumni"
	"github.com/trezcool/portal/core/conversation"
	"github.com/trezcool/portal/storage/database/fixtures"
	inmemdb "github.com/trezcool/portal/storage/database/inmem"
)

func newService(t *testing.T) *alumni.Service {
	t.Helper()
	repo := inmemdb.NewAlumniRepository(inmemdb.Open())
	for _, a := range fixtures.Alumni() {
		_, err := repo.CreateAlumnus(context.Background(), a)
		require.NoError(t, err)
	}
	return alumni.NewService(repo)
}

func names(res []alumni.Alumnus) []string {
	nms := make([]string, 0, len(res))
	for _, a := range res {
		nms = append(nms, a.Name)
	}
	return nms
}

func TestService_Filter(t *testing.T) {
	svc := newService(t)
	tests := []struct {
		name   string
		filter alumni.QueryFilter
		want   []string
	}{
		{
			name:   "no filter",
			filter: alumni.QueryFilter{},
			want: []string{
				"Rahul Sharma", "Priya Patel", "Amit Kumar", "Sneha Gupta",
				"Vikram Singh", "Ananya Reddy", "Karthik Nair", "Neha Verma",
			},
		},
		{
			name:   "department",
			filter: alumni.QueryFilter{Department: "CSE"},
			want:   []string{"Rahul Sharma", "Amit Kumar", "Ananya Reddy", "Neha Verma"},
		},
		{
			name:   "company search",
			filter: alumni.QueryFilter{Search: "google"},
			want:   []string{"Rahul Sharma"},
		},
		{
			name:   "department search",
			filter: alumni.QueryFilter{Search: "ece"},
			want:   []string{"Priya Patel"},
		},
		{
			name:   "online",
			filter: alumni.QueryFilter{Online: "false"},
			want:   []string{"Amit Kumar", "Vikram Singh", "Karthik Nair"},
		},
		{
			name:   "department and online",
			filter: alumni.QueryFilter{Department: "CSE", Online: "true"},
			want:   []string{"Rahul Sharma", "Ananya Reddy", "Neha Verma"},
		},
		{
			name:   "sentinel",
			filter: alumni.QueryFilter{Department: "All", Online: "all", Search: "bangalore"},
			want:   []string{"Rahul Sharma", "Ananya Reddy"},
		},
		{
			name:   "no match",
			filter: alumni.QueryFilter{Department: "EE", Search: "google"},
			want:   []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Filter(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(res.Records))
			assert.Equal(t, len(tt.want), res.Count)
			assert.Equal(t, 8, res.Total)
			assert.True(t, res.Filtered())
		})
	}
}

func TestQueryFilter_Validate(t *testing.T) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	alumni.InitValidators(validate, translator)

	tests := []struct {
		name    string
		filter  alumni.QueryFilter
		wantErr bool
	}{
		{name: "empty", filter: alumni.QueryFilter{}},
		{name: "valid", filter: alumni.QueryFilter{Search: " ra ", Department: " CSE ", Online: "TRUE"}},
		{name: "sentinel", filter: alumni.QueryFilter{Department: "all", Online: "All"}},
		{name: "unknown department", filter: alumni.QueryFilter{Department: "Law"}, wantErr: true},
		{name: "bad online", filter: alumni.QueryFilter{Online: "maybe"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qf := tt.filter
			err := qf.Validate(validate)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var vErrs validator.ValidationErrors
			require.ErrorAs(t, err, &vErrs)
			assert.True(t, core.IsValidationError(core.TranslateValidationErrors(vErrs, translator)))
		})
	}

	qf := alumni.QueryFilter{Search: " ra ", Online: "TRUE"}
	require.NoError(t, qf.Validate(validate))
	assert.Equal(t, "ra", qf.Search)
	assert.Equal(t, "true", qf.Online)
	assert.False(t, qf.IsEmpty())
	assert.True(t, alumni.QueryFilter{Department: "all"}.IsEmpty())
}

func TestService_Browser(t *testing.T) {
	svc := newService(t)
	b, err := svc.Browser(context.Background())
	require.NoError(t, err)

	assert.False(t, b.Result().Filtered())
	assert.Equal(t, 8, b.Refresh().Count)

	res, err := b.SetCriterion(alumni.DimDepartment, "CSE")
	require.NoError(t, err)
	assert.Equal(t, 4, res.Count)

	res = b.SetQuery("neha")
	assert.Equal(t, []string{"Neha Verma"}, names(res.Records))

	_, err = b.SetCriterion(alumni.DimDepartment, "Law")
	assert.True(t, core.IsValidationError(err))
	assert.Equal(t, "CSE", b.Criteria().Value(alumni.DimDepartment))
}

func TestService_GetByID(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	a, err := svc.GetByID(ctx, " 2 ")
	require.NoError(t, err)
	assert.Equal(t, "Priya Patel", a.Name)

	_, err = svc.GetByID(ctx, "")
	assert.Equal(t, alumni.ErrNotFound, err)
	_, err = svc.GetByID(ctx, "42")
	assert.Equal(t, alumni.ErrNotFound, err)
}

func TestService_Create(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, alumni.Alumnus{Name: "  Meera Iyer ", Department: "ECE", Company: "Intel"})
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "Meera Iyer", a.Name)

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, n)

	_, err = svc.Create(ctx, alumni.Alumnus{Name: " ", Department: "ECE"})
	assert.True(t, core.IsValidationError(err))
	_, err = svc.Create(ctx, alumni.Alumnus{Name: "X", Department: "all"})
	assert.True(t, core.IsValidationError(err))
	_, err = svc.Create(ctx, alumni.Alumnus{Name: "X", Department: "Law"})
	assert.True(t, core.IsValidationError(err))
}

func TestService_FindParticipant(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	p, err := svc.FindParticipant(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, conversation.Participant{
		ID:       "1",
		Name:     "Rahul Sharma",
		Headline: "Software Engineer at Google",
		IsOnline: true,
	}, p)

	_, err = svc.FindParticipant(ctx, "42")
	assert.Equal(t, conversation.ErrParticipantNotFound, err)
}
