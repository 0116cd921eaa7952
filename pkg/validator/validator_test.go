package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type shiftInput struct {
	Start string `validate:"required,hhmm"`
	End   string `validate:"omitempty,hhmm"`
}

func TestHHMMValidation(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&shiftInput{Start: "09:00", End: "17:30"}))
	assert.NoError(t, v.Validate(&shiftInput{Start: "23:59"}))

	assert.Error(t, v.Validate(&shiftInput{Start: "9am"}))
	assert.Error(t, v.Validate(&shiftInput{Start: "25:00"}))
	assert.Error(t, v.Validate(&shiftInput{Start: ""}))
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&shiftInput{Start: "bad"})
	assert.Error(t, err)

	formatted := v.FormatValidationErrors(err)
	assert.Equal(t, "Start must be a time in HH:MM format", formatted["Start"])
}
