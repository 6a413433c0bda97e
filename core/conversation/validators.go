package conversation

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/portal/core"
)

var (
	callModeTag  = "call_mode"
	callModeText = "mode must be audio or video"
)

// InitValidators registers the conversation validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(callModeTag, callModeValidation)
	core.RegisterCustomTranslation(validate, translator, callModeTag, callModeText)
}

func callModeValidation(fl validator.FieldLevel) bool {
	return Mode(fl.Field().String()).Valid()
}

type (
	ChatInput struct {
		ParticipantID string `json:"participant_id" validate:"required,notblank"`
	}

	CallInput struct {
		ParticipantID string `json:"participant_id" validate:"required,notblank"`
		Mode          string `json:"mode" validate:"required,call_mode"`
	}

	MessageInput struct {
		Text string `json:"text"`
	}
)
