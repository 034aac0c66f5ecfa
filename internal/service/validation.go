package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/relief_coordination_system/internal/models"
)

// Публичный контракт: фронтенд и SMS-шлюз полагаются на эти выражения
var (
	pkPhonePattern = regexp.MustCompile(`^(0?3|92)\d{9,10}$`)
	cnicPattern    = regexp.MustCompile(`^\d{13}$`)
)

// newValidator возвращает валидатор с правилами pk_phone и cnic; имена полей берутся из json-тегов
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})
	// ошибки регистрации возможны только при пустом теге
	_ = v.RegisterValidation("pk_phone", func(fl validator.FieldLevel) bool {
		return pkPhonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("cnic", func(fl validator.FieldLevel) bool {
		return cnicPattern.MatchString(fl.Field().String())
	})
	return v
}

// validatePayload collects every violation, never only the first one.
func validatePayload(v *validator.Validate, payload any) *models.ValidationError {
	verr := &models.ValidationError{}
	err := v.Struct(payload)
	if err == nil {
		return verr
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verr.Add("", "invalid", err.Error())
		return verr
	}
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), fe.Tag(), violationMessage(fe))
	}
	return verr
}

func violationMessage(fe validator.FieldError) string {
	isText := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if isText {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if isText {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "pk_phone":
		return "must be a Pakistani mobile number (03XXXXXXXXX or 923XXXXXXXXX)"
	case "cnic":
		return "must be exactly 13 digits without dashes"
	}
	return "failed " + fe.Tag() + " check"
}

// validCNIC is used by lookups that take a bare CNIC.
func validCNIC(cnic string) bool {
	return cnicPattern.MatchString(cnic)
}

// checkJurisdiction verifies that province and district reference existing authority nodes.
func checkJurisdiction(dir AuthorityDirectory, verr *models.ValidationError, provinceID, districtID int) {
	if verr.HasField("provinceId") || verr.HasField("districtId") {
		return
	}
	if _, err := dir.Province(provinceID); err != nil {
		verr.Add("provinceId", "exists", "province does not exist")
		return
	}
	if _, err := dir.District(provinceID, districtID); err != nil {
		verr.Add("districtId", "exists", "district does not exist in the given province")
	}
}
