// Package repo implements the data persistence layer for the médicos
// directory, backed by GORM. This file provides the repository functions
// for the Medico model.
//
// All functions are context-aware and accept a *gorm.DB handle. They follow
// the "thin repository" approach: no business logic, only CRUD persistence.
// Each call issues exactly one statement; the pool hands out and reclaims the
// connection per statement, so no connection is held across operations.
//
// Error semantics:
//   - When a médico is not found, functions return ErrNotFound
//     (an alias of gorm.ErrRecordNotFound).
//   - When the unique index on correo_interno is violated, insert and update
//     return ErrDuplicateEmail.
//   - On other DB errors (connectivity, missing table, etc.) the raw gorm
//     error is propagated; classification into a storage-unavailable
//     condition happens in the service layer.
package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/vitaclinic/go-medicos-web/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// ErrDuplicateEmail is returned when an insert or update collides with the
// unique index on correo_interno.
var ErrDuplicateEmail = errors.New("correo_interno already exists")

// ListMedicos returns every row of the medicos table in natural storage
// order. It returns an empty slice for an empty table. On DB error, it
// returns the error.
func ListMedicos(ctx context.Context, db *gorm.DB) ([]domain.Medico, error) {
	var out []domain.Medico
	err := db.WithContext(ctx).Find(&out).Error
	return out, err
}

// CreateMedico inserts one row and returns it with the store-assigned id.
// A uniqueness violation on the e-mail column yields ErrDuplicateEmail.
func CreateMedico(ctx context.Context, db *gorm.DB, nombre, especialidad, email string) (*domain.Medico, error) {
	m := &domain.Medico{
		Nombre:       nombre,
		Especialidad: especialidad,
		Email:        email,
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		if isDuplicate(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return m, nil
}

// GetMedico fetches a single médico by id, or ErrNotFound if missing.
func GetMedico(ctx context.Context, db *gorm.DB, id int) (*domain.Medico, error) {
	var m domain.Medico
	if err := db.WithContext(ctx).First(&m, "id_medico = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateMedico replaces the three mutable fields of the médico identified by
// id. If no row is affected, it returns ErrNotFound. A uniqueness violation
// on the e-mail column yields ErrDuplicateEmail.
func UpdateMedico(ctx context.Context, db *gorm.DB, id int, nombre, especialidad, email string) error {
	res := db.WithContext(ctx).
		Model(&domain.Medico{}).
		Where("id_medico = ?", id).
		Updates(map[string]any{
			"nombre":         nombre,
			"especialidad":   especialidad,
			"correo_interno": email,
		})
	if res.Error != nil {
		if isDuplicate(res.Error) {
			return ErrDuplicateEmail
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMedico removes the médico with the given id and reports whether a
// row was actually deleted. A missing id is not an error: it returns
// (false, nil), which callers surface as "not found".
func DeleteMedico(ctx context.Context, db *gorm.DB, id int) (bool, error) {
	res := db.WithContext(ctx).Delete(&domain.Medico{}, "id_medico = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// isDuplicate detects unique-constraint violations across drivers. GORM's
// TranslateError maps them to gorm.ErrDuplicatedKey on MySQL; the string
// checks cover drivers that do not translate (sqlite in tests).
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "duplicate key")
}
