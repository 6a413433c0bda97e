package alumni

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/portal/core/directory"
)

var (
	departmentTag  = "alumni_department"
	departmentText = "unknown department"

	onlineTag  = "alumni_online"
	onlineText = "must be one of true, false or all"
)

// InitValidators registers the alumni filter validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	directory.RegisterDimensionValidation(validate, translator, departmentTag, departmentText, Schema, DimDepartment)
	directory.RegisterDimensionValidation(validate, translator, onlineTag, onlineText, Schema, DimOnline)
}

// Validate cleans qf and checks every criterion.
func (qf *QueryFilter) Validate(validate *validator.Validate) error {
	qf.Clean()
	if err := validate.Struct(qf); err != nil {
		return err
	}
	return Schema.Validate(qf.Criteria())
}
