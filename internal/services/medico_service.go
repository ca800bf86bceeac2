// Package services – MedicoService
//
// This file implements the MedicoService, which orchestrates the médico
// lifecycle: it validates and normalizes form input, invokes exactly one
// repository operation per use-case, and maps persistence failures onto the
// service error taxonomy (ErrMedicoNotFound, ErrDuplicateEmail,
// ErrStorageUnavailable). Handlers translate these into HTTP results.
package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/vitaclinic/go-medicos-web/internal/domain"
	"github.com/vitaclinic/go-medicos-web/internal/repo"
)

// MedicoRepo defines the repository contract required by MedicoService.
// Implementations are responsible for persistence of médico rows.
type MedicoRepo interface {
	// ListMedicos returns every row in natural storage order.
	ListMedicos(ctx context.Context, db *gorm.DB) ([]domain.Medico, error)

	// CreateMedico inserts one row and returns it with the assigned id.
	CreateMedico(ctx context.Context, db *gorm.DB, nombre, especialidad, email string) (*domain.Medico, error)

	// GetMedico fetches one row by id.
	GetMedico(ctx context.Context, db *gorm.DB, id int) (*domain.Medico, error)

	// UpdateMedico replaces the three mutable fields of one row.
	UpdateMedico(ctx context.Context, db *gorm.DB, id int, nombre, especialidad, email string) error

	// DeleteMedico removes one row and reports whether it existed.
	DeleteMedico(ctx context.Context, db *gorm.DB, id int) (bool, error)
}

// MedicoService provides the directory use-cases: list, create, fetch,
// update, and delete. Create and Update validate first; no persistence call
// is made when validation fails.
type MedicoService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the médico repository used by this service.
	Repo MedicoRepo
}

// NewMedicoService constructs a MedicoService bound to db and r.
func NewMedicoService(db *gorm.DB, r MedicoRepo) *MedicoService {
	return &MedicoService{DB: db, Repo: r}
}

// List returns every médico. Rows are not re-validated against the creation
// rules; historical data is returned as stored.
func (s *MedicoService) List(ctx context.Context) ([]domain.Medico, error) {
	out, err := s.Repo.ListMedicos(ctx, s.DB)
	if err != nil {
		return nil, storageErr(err)
	}
	return out, nil
}

// Create validates in, normalizes the text fields, and inserts one row.
// It returns the persisted médico with its assigned id. Failure modes:
// *ValidationError (no persistence call), ErrDuplicateEmail, or
// ErrStorageUnavailable.
func (s *MedicoService) Create(ctx context.Context, in MedicoInput) (*domain.Medico, error) {
	in, verr := ValidateMedico(in)
	if verr != nil {
		return nil, verr
	}
	m, err := s.Repo.CreateMedico(ctx, s.DB, in.Nombre, in.Especialidad, in.Email)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, storageErr(err)
	}
	return m, nil
}

// Get fetches one médico by id, or ErrMedicoNotFound.
func (s *MedicoService) Get(ctx context.Context, id int) (*domain.Medico, error) {
	m, err := s.Repo.GetMedico(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrMedicoNotFound
		}
		return nil, storageErr(err)
	}
	return m, nil
}

// Update validates in and replaces all three mutable fields of the médico
// identified by id. Failure modes: *ValidationError (no persistence call),
// ErrMedicoNotFound, ErrDuplicateEmail, or ErrStorageUnavailable.
func (s *MedicoService) Update(ctx context.Context, id int, in MedicoInput) error {
	in, verr := ValidateMedico(in)
	if verr != nil {
		return verr
	}
	err := s.Repo.UpdateMedico(ctx, s.DB, id, in.Nombre, in.Especialidad, in.Email)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repo.ErrNotFound):
		return ErrMedicoNotFound
	case errors.Is(err, repo.ErrDuplicateEmail):
		return ErrDuplicateEmail
	default:
		return storageErr(err)
	}
}

// Delete removes the médico with the given id. Deleting a missing id yields
// ErrMedicoNotFound, never a storage error; the operation is safe to repeat.
func (s *MedicoService) Delete(ctx context.Context, id int) error {
	removed, err := s.Repo.DeleteMedico(ctx, s.DB, id)
	if err != nil {
		return storageErr(err)
	}
	if !removed {
		return ErrMedicoNotFound
	}
	return nil
}

// storageErr classifies any unexpected persistence failure as
// ErrStorageUnavailable while keeping the cause in the chain.
func storageErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
