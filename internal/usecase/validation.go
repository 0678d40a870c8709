package usecase

import (
	"fmt"
	"net/mail"
	"strings"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors agrega os erros campo a campo para o handler
// devolver no formato {errors: [...]}.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Error())
	}
	return "validation failed: " + strings.Join(msgs, ", ")
}

func ValidateCreateLeadInput(input CreateLeadInput) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(input.Nome) == "" {
		errs = append(errs, ValidationError{"nome", "Nome é obrigatório"})
	} else if len(input.Nome) > 200 {
		errs = append(errs, ValidationError{"nome", "Nome deve ter no máximo 200 caracteres"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errs = append(errs, ValidationError{"email", "Email é obrigatório"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errs = append(errs, ValidationError{"email", "Email deve ser válido"})
	}

	if strings.TrimSpace(input.Telefone) == "" {
		errs = append(errs, ValidationError{"telefone", "Telefone é obrigatório"})
	}

	return errs
}
