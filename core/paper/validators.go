package paper

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/portal/core/directory"
)

var (
	departmentTag  = "paper_department"
	departmentText = "unknown department"

	yearTag  = "paper_year"
	yearText = "no papers are archived for this year"

	semesterTag  = "paper_semester"
	semesterText = "unknown semester"

	examTypeTag  = "paper_exam_type"
	examTypeText = "unknown exam type"
)

// InitValidators registers the question paper filter validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	directory.RegisterDimensionValidation(validate, translator, departmentTag, departmentText, Schema, DimDepartment)
	directory.RegisterDimensionValidation(validate, translator, yearTag, yearText, Schema, DimYear)
	directory.RegisterDimensionValidation(validate, translator, semesterTag, semesterText, Schema, DimSemester)
	directory.RegisterDimensionValidation(validate, translator, examTypeTag, examTypeText, Schema, DimExamType)
}

// Validate cleans qf and checks every criterion.
func (qf *QueryFilter) Validate(validate *validator.Validate) error {
	qf.Clean()
	if err := validate.Struct(qf); err != nil {
		return err
	}
	return Schema.Validate(qf.Criteria())
}
