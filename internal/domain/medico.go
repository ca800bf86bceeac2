// Package domain defines the persistence model for the medical-staff
// directory. The single entity, Medico, is mapped with GORM onto the
// legacy MySQL schema (Spanish column names, id_medico primary key).
package domain

// Medico represents one directory entry: a staff physician with a name,
// a specialty, and an internal e-mail address.
//
// Fields:
//   - ID: auto-increment primary key, assigned by the store on insert and
//     immutable thereafter (column id_medico).
//   - Nombre / Especialidad: stored trimmed and title-cased; historical rows
//     may predate the current validation rules and are read back verbatim.
//   - Email: internal address (column correo_interno). Uniqueness is
//     enforced by the database index, not by application pre-checks.
type Medico struct {
	ID           int    `json:"id"           gorm:"column:id_medico;primaryKey;autoIncrement"`
	Nombre       string `json:"nombre"       gorm:"column:nombre;type:varchar(50);not null"`
	Especialidad string `json:"especialidad" gorm:"column:especialidad;type:varchar(50);not null"`
	Email        string `json:"email"        gorm:"column:correo_interno;type:varchar(255);not null;uniqueIndex:ux_medicos_correo"`
}

// TableName overrides GORM's pluralization, which does not apply to the
// Spanish table name.
func (Medico) TableName() string { return "medicos" }
