package validation

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// PasswordError representa una contraseña que no cumple las reglas del backend
type PasswordError struct {
	Message string
}

func (e *PasswordError) Error() string {
	return e.Message
}

// MinPasswordLength es el largo mínimo que exige el backend HCE
const MinPasswordLength = 8

// ValidatePassword aplica las mismas reglas que /auth/change-password:
// largo mínimo, una mayúscula, una minúscula y un número.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return &PasswordError{Message: fmt.Sprintf("La contraseña debe tener al menos %d caracteres", MinPasswordLength)}
	}

	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}

	if !upper {
		return &PasswordError{Message: "La contraseña debe contener al menos una letra mayúscula"}
	}
	if !lower {
		return &PasswordError{Message: "La contraseña debe contener al menos una letra minúscula"}
	}
	if !digit {
		return &PasswordError{Message: "La contraseña debe contener al menos un número"}
	}
	return nil
}
