package customvalidator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email  string  `validate:"required,email"`
	Stage  *string `validate:"omitempty,request_stage"`
	Status string  `validate:"omitempty,equipment_status"`
	Role   string  `validate:"omitempty,user_role"`
}

func newValidator(t *testing.T) *validator.Validate {
	v := validator.New()
	require.NoError(t, RegisterCustomValidations(v))
	return v
}

func TestEnumRules(t *testing.T) {
	v := newValidator(t)
	inProgress := "In Progress"
	unknown := "Done"

	assert.NoError(t, v.Struct(sample{Email: "a@b.io", Stage: &inProgress, Status: "DECOMMISSIONED", Role: "Technician"}))
	assert.NoError(t, v.Struct(sample{Email: "a@b.io"}), "nil stage is omitted")
	assert.Error(t, v.Struct(sample{Email: "a@b.io", Stage: &unknown}))
	assert.Error(t, v.Struct(sample{Email: "a@b.io", Status: "BROKEN"}))
	assert.Error(t, v.Struct(sample{Email: "a@b.io", Role: "admin"}), "roles are case sensitive")
}

func TestEmailRule(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(sample{Email: "tech.one@plant.example"}))
	assert.Error(t, v.Struct(sample{Email: "tech@plant"}))
}
