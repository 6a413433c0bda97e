package directory

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/portal/core"
)

// RegisterDimensionValidation registers `tag` so that a string field is only valid
// when the named dimension of schema allows its value.
func RegisterDimensionValidation(
	validate *validator.Validate,
	translator ut.Translator,
	tag, text string,
	schema *Schema,
	dimension string,
) {
	_ = validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		dim, ok := schema.Dimension(dimension)
		if !ok {
			return false
		}
		return dim.Allows(fl.Field().String())
	})
	core.RegisterCustomTranslation(validate, translator, tag, text)
}
