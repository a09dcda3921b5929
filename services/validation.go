package services

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = validate.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			_, ok := parseClock(fl.Field().String())
			return ok
		})
	})
	return validate
}

// validateStruct istek yapısını doğrular ve ilk hatayı Türkçe mesajla döndürür.
func validateStruct(v any) error {
	err := getValidator().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return ErrInvalidInput
	}
	return Validationf("%s", fieldMessage(verrs[0]))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " alanı zorunludur"
	case "email":
		return field + " geçerli bir e-posta adresi olmalıdır"
	case "min":
		if fe.Kind() == reflect.String {
			return field + " en az " + fe.Param() + " karakter olmalıdır"
		}
		return field + " en az " + fe.Param() + " olmalıdır"
	case "max":
		if fe.Kind() == reflect.String {
			return field + " en fazla " + fe.Param() + " karakter olabilir"
		}
		return field + " en fazla " + fe.Param() + " olabilir"
	case "gte":
		return field + " " + fe.Param() + " veya daha büyük olmalıdır"
	case "lte":
		return field + " " + fe.Param() + " veya daha küçük olmalıdır"
	case "gt":
		return field + " " + fe.Param() + " değerinden büyük olmalıdır"
	case "oneof":
		return field + " şu değerlerden biri olmalıdır: " + fe.Param()
	case "url":
		return field + " geçerli bir adres olmalıdır"
	case "hhmm":
		return field + " SS:DD biçiminde olmalıdır"
	default:
		return field + " alanı geçersiz"
	}
}

// parseClock "SS:DD" biçimindeki saati dakikaya çevirir.
func parseClock(s string) (int, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}
	h, ok1 := twoDigits(s[0:2])
	m, ok2 := twoDigits(s[3:5])
	if !ok1 || !ok2 || h > 23 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func twoDigits(s string) (int, bool) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}
