package validator

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"supplyconnect/internal/domain/model"
	"supplyconnect/internal/usecase"

	"github.com/go-playground/validator/v10"
)

// echo.Validator の実装（go-playground/validator）
// エラーは最初の1件だけを400のHTTPErrorにする。
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()

	//メッセージにはjsonの名前を使う
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("order_status", func(fl validator.FieldLevel) bool {
		return model.OrderStatus(fl.Field().String()).Valid()
	})

	return &Validator{v: v}
}

func (cv *Validator) Validate(i interface{}) error {
	err := cv.v.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return usecase.NewHTTPError(http.StatusBadRequest, message(verrs[0]))
	}
	return usecase.NewHTTPError(http.StatusBadRequest, "invalid input")
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Please enter a valid email address"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "uuid", "uuid4":
		return fmt.Sprintf("invalid %s", fe.Field())
	case "order_status":
		return usecase.MsgInvalidTransition
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
