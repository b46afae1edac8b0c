package entity

import (
	"time"
)

// User representa un usuario registrado del sistema.
//
// El ID lo asigna el almacén al crear y es inmutable. CreatedAt se fija en la
// primera escritura y nunca cambia; UpdatedAt se refresca en cada mutación.
type User struct {
	ID        int64
	Name      string // requerido, ≤50
	Email     string // requerido, único, formato email, ≤100
	Phone     string // opcional, ≤20
	Age       *int   // opcional, 1–150; nil = no informado
	Gender    string // opcional, ≤10
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate verifica las restricciones de campos del usuario.
// Devuelve un error que envuelve domain.ErrValidation si alguna falla.
func (u *User) Validate() error {
	if err := requireMaxLen("name", u.Name, 50); err != nil {
		return err
	}
	if err := requireMaxLen("email", u.Email, 100); err != nil {
		return err
	}
	if err := validEmail("email", u.Email); err != nil {
		return err
	}
	if err := maxLen("phone", u.Phone, 20); err != nil {
		return err
	}
	if u.Age != nil {
		if err := intRange("age", *u.Age, 1, 150); err != nil {
			return err
		}
	}
	return maxLen("gender", u.Gender, 10)
}
