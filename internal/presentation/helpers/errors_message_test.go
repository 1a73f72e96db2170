package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type validatedBody struct {
	Name  string `validate:"required,min=3"`
	Email string `validate:"required,email"`
}

func TestGetErrorMessages_TranslatesEveryFieldError(t *testing.T) {
	validate := NewValidator()

	err := validate.Struct(validatedBody{Name: "ab", Email: "nope"})
	assert.Error(t, err)

	msg := GetErrorMessages(err)
	assert.Contains(t, msg, "Name")
	assert.Contains(t, msg, "Email")
	assert.Contains(t, msg, ", ")
}

func TestGetErrorMessages_StableAcrossCalls(t *testing.T) {
	validate := NewValidator()

	err := validate.Struct(validatedBody{})
	assert.Error(t, err)

	first := GetErrorMessages(err)
	second := GetErrorMessages(err)
	assert.Equal(t, first, second)
}
