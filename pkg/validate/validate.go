package validate

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/GlebRadaev/mlmplatform/pkg/utils"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		if err := v.RegisterValidation("luhn", lunaField); err != nil {
			panic(err)
		}
		instance = v
	})
	return instance
}

// Struct checks s against its `validate` tags and returns one entry per
// violated field, or nil when s is valid.
func Struct(s interface{}) []utils.FieldError {
	err := get().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []utils.FieldError{{Field: "", Rule: "invalid"}}
	}
	out := make([]utils.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, utils.FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return out
}
