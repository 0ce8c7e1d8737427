package http

import (
	"github.com/go-playground/validator/v10"
)

// validate instancia compartida del validador de structs (es thread-safe).
var validate = validator.New(validator.WithRequiredStructEnabled())

// validationMessage convierte el primer error de validación en un mensaje legible.
func validationMessage(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "entrada inválida"
	}
	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " es requerido"
	case "email":
		return fe.Field() + " debe ser un email válido"
	case "oneof":
		return fe.Field() + " debe ser uno de: " + fe.Param()
	case "gt":
		return fe.Field() + " debe ser mayor que " + fe.Param()
	case "min":
		return fe.Field() + " es demasiado corto"
	case "max":
		return fe.Field() + " es demasiado largo"
	case "url":
		return fe.Field() + " debe ser una URL válida"
	default:
		return fe.Field() + " no es válido"
	}
}
