package alumni

import (
	"strconv"

	"github.com/trezcool/portal/core"
	"github.com/trezcool/portal/core/directory"
)

// Filter dimensions
const (
	DimDepartment = "department"
	DimOnline     = "online"
)

var (
	Departments = []string{"CSE", "ECE", "EE", "ME", "CE"}

	// Schema lists what the alumni directory can be filtered by.
	Schema = directory.NewSchema(
		directory.Dimension{Name: DimDepartment, Values: Departments},
		directory.Dimension{Name: DimOnline, Values: []string{"true", "false"}},
	)
)

// Alumnus is a graduate listed in the alumni directory.
type Alumnus struct {
	ID         string `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	Batch      int    `json:"batch" db:"batch"`
	Department string `json:"department" db:"department"`
	Company    string `json:"company" db:"company"`
	Role       string `json:"role" db:"role"`
	Location   string `json:"location" db:"location"`
	Avatar     string `json:"avatar" db:"avatar"`
	IsOnline   bool   `json:"is_online" db:"is_online"`
}

var _ directory.Entity = Alumnus{} // interface compliance check

func (a Alumnus) Attribute(dimension string) string {
	switch dimension {
	case DimDepartment:
		return a.Department
	case DimOnline:
		return strconv.FormatBool(a.IsOnline)
	default:
		return ""
	}
}

func (a Alumnus) SearchFields() []string {
	return []string{a.Name, a.Company, a.Department, a.Role, a.Location}
}

// QueryFilter holds the alumni directory criteria as sent by clients.
type QueryFilter struct {
	Search     string `query:"search" json:"search"`
	Department string `query:"department" json:"department" validate:"omitempty,alumni_department"`
	Online     string `query:"online" json:"online" validate:"omitempty,alumni_online"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Department = core.CleanString(qf.Department)
	qf.Online = core.CleanString(qf.Online, true /* lower */)
}

func (qf QueryFilter) IsEmpty() bool {
	return qf.Criteria().IsEmpty()
}

// Criteria converts qf to directory criteria.
func (qf QueryFilter) Criteria() directory.Criteria {
	return directory.NewCriteria(qf.Search).
		With(DimDepartment, qf.Department).
		With(DimOnline, qf.Online)
}
