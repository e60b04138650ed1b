package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Instancia única; validator cachea la metadata de structs internamente.
var v = validator.New(validator.WithRequiredStructEnabled())

// Struct valida un DTO según sus tags `validate`. Devuelve un error con los
// campos rechazados en un formato apto para mostrar al usuario del API.
func Struct(s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("campos inválidos: %s", strings.Join(fields, ", "))
}

// Var valida un valor suelto con una regla concreta (ej. "required,email").
func Var(value interface{}, tag string) error {
	return v.Var(value, tag)
}
