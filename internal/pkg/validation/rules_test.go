package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title string `json:"title" validate:"required,notblank,max=5"`
	Name  string `json:"name" validate:"min=2"`
	Role  string `json:"role" validate:"oneof=alumni student"`
	Link  string `json:"link" validate:"omitempty,url"`
}

func messages(t *testing.T, v *validator.Validate, s sample) map[string]string {
	t.Helper()
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	out := map[string]string{}
	for _, fe := range verrs {
		out[fe.Field()] = FieldMessage(fe)
	}
	return out
}

func TestRules(t *testing.T) {
	v := validator.New()
	require.NoError(t, Register(v))

	assert.Nil(t, messages(t, v, sample{Title: "hey", Name: "Jo", Role: "alumni"}))

	got := messages(t, v, sample{Title: "   ", Name: "J", Role: "admin", Link: "nope"})
	assert.Equal(t, "title is required", got["title"])
	assert.Equal(t, "name must be at least 2 characters", got["name"])
	assert.Equal(t, "role must be one of: alumni, student", got["role"])
	assert.Equal(t, "link must be a valid URL", got["link"])

	got = messages(t, v, sample{Title: "too long", Name: "Jo", Role: "student"})
	assert.Equal(t, "title must be at most 5 characters", got["title"])
}

func TestRegisterRules_Idempotent(t *testing.T) {
	require.NoError(t, RegisterRules())
	require.NoError(t, RegisterRules())
}
