package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator configura el validador compartido.
// - Usa los nombres de los tags json en los mensajes de error.
// - Registra alias para validaciones comunes.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterAlias("pwd", "min=6") // longitud mínima de password
	return v
}

// Struct valida un struct de entrada según sus tags `validate`.
// Devuelve un mapa campo->mensaje si hay violaciones, o nil.
func Struct(in interface{}) map[string]string {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"input": "entrada inválida"}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = formatFieldError(fe)
	}
	return out
}

func formatFieldError(fe validator.FieldError) string {
	param := fe.Param()
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "email":
		return "debe ser un email válido"
	case "min":
		if isNumberKind(fe.Kind()) {
			return "debe ser al menos " + param
		}
		return "debe tener al menos " + param + " caracteres"
	case "max":
		if isNumberKind(fe.Kind()) {
			return "debe ser como máximo " + param
		}
		return "debe tener como máximo " + param + " caracteres"
	case "gt":
		return "debe ser mayor que " + param
	case "gte":
		return "debe ser mayor o igual a " + param
	case "oneof":
		return "debe ser uno de: " + strings.ReplaceAll(param, " ", ", ")
	case "uuid":
		return "debe ser un UUID válido"
	case "pwd":
		return "debe tener al menos 6 caracteres"
	case "dive":
		return "elemento inválido"
	default:
		if param != "" {
			return fmt.Sprintf("falló la validación '%s' con parámetro '%s'", fe.Tag(), param)
		}
		return fmt.Sprintf("falló la validación '%s'", fe.Tag())
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
