package dogs

import "time"

// DateLayout es el formato en el que se expone birth_date (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Dog representa un perro registrado.
// Una vez creado no se modifica.
type Dog struct {
	ID string

	Name string

	// BirthDate es una fecha de calendario (medianoche UTC).
	BirthDate time.Time
	// IsBirthDateExact indica si BirthDate es la fecha real o una estimación.
	IsBirthDateExact bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
