package paper

import (
	"strconv"

	"github.com/trezcool/portal/core"
	"github.com/trezcool/portal/core/directory"
)

// Filter dimensions
const (
	DimDepartment = "department"
	DimYear       = "year"
	DimSemester   = "semester"
	DimExamType   = "exam_type"
)

// Exam types
const (
	ExamMidSem = "Mid Sem"
	ExamEndSem = "End Sem"
)

// DepartmentCommon marks a paper shared by every department.
const DepartmentCommon = "All"

var (
	Departments = []string{"CSE", "ECE", "EE", "ME", "CE"}
	Years       = []string{"2024", "2023", "2022", "2021"}
	Semesters   = []string{"1st", "2nd", "3rd", "4th", "5th", "6th", "7th", "8th"}
	ExamTypes   = []string{ExamMidSem, ExamEndSem}

	// Schema lists what the question papers can be filtered by.
	Schema = directory.NewSchema(
		directory.Dimension{Name: DimDepartment, Values: Departments},
		directory.Dimension{Name: DimYear, Values: Years},
		directory.Dimension{Name: DimSemester, Values: Semesters},
		directory.Dimension{Name: DimExamType, Values: ExamTypes},
	)
)

// Paper is a previous-year question paper.
type Paper struct {
	ID         string `json:"id" db:"id"`
	Subject    string `json:"subject" db:"subject"`
	Year       int    `json:"year" db:"year"`
	Semester   string `json:"semester" db:"semester"`
	ExamType   string `json:"exam_type" db:"exam_type"`
	Department string `json:"department" db:"department"`
}

var _ directory.Entity = Paper{} // interface compliance check

func (p Paper) Attribute(dimension string) string {
	switch dimension {
	case DimDepartment:
		return p.Department
	case DimYear:
		return strconv.Itoa(p.Year)
	case DimSemester:
		return p.Semester
	case DimExamType:
		return p.ExamType
	default:
		return ""
	}
}

func (p Paper) SearchFields() []string { return []string{p.Subject} }

// QueryFilter holds the question paper criteria as sent by clients.
type QueryFilter struct {
	Search     string `query:"search" json:"search"`
	Department string `query:"department" json:"department" validate:"omitempty,paper_department"`
	Year       string `query:"year" json:"year" validate:"omitempty,paper_year"`
	Semester   string `query:"semester" json:"semester" validate:"omitempty,paper_semester"`
	ExamType   string `query:"exam_type" json:"exam_type" validate:"omitempty,paper_exam_type"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Department = core.CleanString(qf.Department)
	qf.Year = core.CleanString(qf.Year)
	qf.Semester = core.CleanString(qf.Semester)
	qf.ExamType = core.CleanString(qf.ExamType)
}

func (qf QueryFilter) IsEmpty() bool {
	return qf.Criteria().IsEmpty()
}

// Criteria converts qf to directory criteria.
func (qf QueryFilter) Criteria() directory.Criteria {
	return directory.NewCriteria(qf.Search).
		With(DimDepartment, qf.Department).
		With(DimYear, qf.Year).
		With(DimSemester, qf.Semester).
		With(DimExamType, qf.ExamType)
}
