package customvalidator

import (
	"reflect"
	"regexp"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"

	"gearguard/pkg/constants"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// RegisterCustomValidations installs the email rule and one rule per closed enum.
func RegisterCustomValidations(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"email":            isGoodEmailFormat,
		"equipment_status": enumRule(func(s string) bool { return constants.EquipmentStatus(s).IsValid() }),
		"request_stage":    enumRule(func(s string) bool { return constants.RequestStage(s).IsValid() }),
		"maintenance_type": enumRule(func(s string) bool { return constants.MaintenanceType(s).IsValid() }),
		"maintenance_for":  enumRule(func(s string) bool { return constants.MaintenanceFor(s).IsValid() }),
		"priority":         enumRule(func(s string) bool { return constants.Priority(s).IsValid() }),
		"user_role":        enumRule(func(s string) bool { return constants.UserRole(s).IsValid() }),
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	registerNullTypes(v)
	return nil
}

func isGoodEmailFormat(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

func enumRule(valid func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		return valid(fl.Field().String())
	}
}

// registerNullTypes lets rules look inside null.* wrappers; an invalid value reads as nil
// so omitempty applies.
func registerNullTypes(v *validator.Validate) {
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(null.String); ok && val.Valid {
			return val.String
		}
		return nil
	}, null.String{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(null.Uint64); ok && val.Valid {
			return val.Uint64
		}
		return nil
	}, null.Uint64{})
}
