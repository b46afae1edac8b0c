package entity

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/jhoicas/registros-api/internal/domain"
)

// Patrón de email: local@dominio.tld, sin espacios. Suficiente para el
// formato que exige el sistema; la verificación real la hace el correo.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validationErrorf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), domain.ErrValidation)
}

// requireMaxLen exige campo no vacío con longitud máxima en runes.
func requireMaxLen(field, value string, max int) error {
	if value == "" {
		return validationErrorf("%s es requerido", field)
	}
	return maxLen(field, value, max)
}

// maxLen exige longitud máxima en runes; la cadena vacía siempre pasa.
func maxLen(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return validationErrorf("%s no puede superar %d caracteres", field, max)
	}
	return nil
}

func validEmail(field, value string) error {
	if !emailPattern.MatchString(value) {
		return validationErrorf("%s no tiene un formato de email válido", field)
	}
	return nil
}

// intRange exige min ≤ value ≤ max.
func intRange(field string, value, min, max int) error {
	if value < min || value > max {
		return validationErrorf("%s debe estar entre %d y %d", field, min, max)
	}
	return nil
}

// pastOrPresent exige que la fecha no sea posterior al instante now.
// Las fechas de negocio se guardan a medianoche UTC, por lo que la fecha de
// hoy siempre pasa mientras now sea el instante actual.
func pastOrPresent(field string, d, now time.Time) error {
	if d.After(now) {
		return validationErrorf("%s debe ser una fecha presente o pasada", field)
	}
	return nil
}
