// Médico HTTP handlers.
//
// This file exposes the web surface of the directory:
//   - GET    /                      (listing page)
//   - GET    /medico/nuevo          (create form)
//   - POST   /medico/nuevo          (create submission)
//   - GET    /medico/editar/{id}    (edit form)
//   - POST   /medico/editar/{id}    (edit submission)
//   - DELETE /medico/{id}           (delete, JSON response)
//   - DELETE /medico/eliminar/{id}  (alias used by the listing page script)
//
// Handlers are transport-thin: they decode the form fields, call the
// application service, and translate results into a rendered page, a
// redirect, or a JSON envelope. Failed submissions re-render the form with
// the raw submitted values so the user never re-types a correction.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vitaclinic/go-medicos-web/internal/domain"
	"github.com/vitaclinic/go-medicos-web/internal/services"
)

// MsgCorreoDuplicado is shown when a submission collides with an e-mail
// already present in the directory.
const MsgCorreoDuplicado = "El correo interno ya está registrado"

// MedicoService defines the directory operations consumed by the handlers.
//
// Implementations must be safe for concurrent use and honor the provided
// context for cancellation.
type MedicoService interface {
	// List returns every médico in storage order.
	List(ctx context.Context) ([]domain.Medico, error)
	// Create validates and inserts one médico.
	Create(ctx context.Context, in services.MedicoInput) (*domain.Medico, error)
	// Get fetches one médico by id.
	Get(ctx context.Context, id int) (*domain.Medico, error)
	// Update validates and replaces the mutable fields of one médico.
	Update(ctx context.Context, id int, in services.MedicoInput) error
	// Delete removes one médico by id.
	Delete(ctx context.Context, id int) error
}

// Handlers groups the HTTP endpoints of the directory. It depends on the
// abstract service interface so transport stays separate from business
// logic.
type Handlers struct {
	svc MedicoService
}

// New constructs a Handlers instance bound to the given service.
func New(svc MedicoService) *Handlers {
	return &Handlers{svc: svc}
}

// formInput decodes the three form fields of a create or edit submission.
func formInput(c *gin.Context) services.MedicoInput {
	return services.MedicoInput{
		Nombre:       c.PostForm("nombre"),
		Especialidad: c.PostForm("especialidad"),
		Email:        c.PostForm("email"),
	}
}

// pathID parses the :id route parameter. A non-numeric id behaves like a
// missing record.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Index renders the listing page. When storage is unreachable it degrades to
// the "no disponible" page instead of propagating a server error.
func (h *Handlers) Index(c *gin.Context) {
	medicos, err := h.svc.List(c.Request.Context())
	if err != nil {
		unavailable(c, http.StatusOK, err)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Medicos": medicos,
	})
}

// NuevoMedicoForm renders the empty creation form.
func (h *Handlers) NuevoMedicoForm(c *gin.Context) {
	c.HTML(http.StatusOK, "nuevo_medico.html", gin.H{})
}

// CrearMedico handles the creation submission. On success it redirects to
// the listing (303, redirect-after-POST). Validation and duplicate-email
// failures re-render the form with the submitted values and a 422 status.
func (h *Handlers) CrearMedico(c *gin.Context) {
	in := formInput(c)

	_, err := h.svc.Create(c.Request.Context(), in)
	if err == nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		h.renderNuevo(c, in, verr.Messages())
	case errors.Is(err, services.ErrDuplicateEmail):
		h.renderNuevo(c, in, []string{MsgCorreoDuplicado})
	default:
		unavailable(c, http.StatusServiceUnavailable, err)
	}
}

// renderNuevo re-renders the creation form pre-filled with the raw submitted
// values and the error messages.
func (h *Handlers) renderNuevo(c *gin.Context, in services.MedicoInput, errores []string) {
	c.HTML(http.StatusUnprocessableEntity, "nuevo_medico.html", gin.H{
		"Errores":      errores,
		"Nombre":       in.Nombre,
		"Especialidad": in.Especialidad,
		"Email":        in.Email,
	})
}

// EditarMedicoForm renders the edit form pre-filled with the stored values.
// Stored values are shown as-is: historical rows are not re-validated.
func (h *Handlers) EditarMedicoForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "Médico no encontrado")
		return
	}

	m, err := h.svc.Get(c.Request.Context(), id)
	switch {
	case err == nil:
		c.HTML(http.StatusOK, "editar_medico.html", gin.H{"Medico": m})
	case errors.Is(err, services.ErrMedicoNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "Médico no encontrado")
	default:
		unavailable(c, http.StatusServiceUnavailable, err)
	}
}

// ActualizarMedico handles the edit submission. The target id is preserved
// on every failure path so the form keeps posting to the same record.
func (h *Handlers) ActualizarMedico(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "Médico no encontrado")
		return
	}
	in := formInput(c)

	err := h.svc.Update(c.Request.Context(), id, in)
	if err == nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		h.renderEditar(c, id, in, verr.Messages())
	case errors.Is(err, services.ErrDuplicateEmail):
		h.renderEditar(c, id, in, []string{MsgCorreoDuplicado})
	case errors.Is(err, services.ErrMedicoNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "Médico no encontrado")
	default:
		unavailable(c, http.StatusServiceUnavailable, err)
	}
}

// renderEditar re-renders the edit form with the raw submitted values under
// the same id.
func (h *Handlers) renderEditar(c *gin.Context, id int, in services.MedicoInput, errores []string) {
	c.HTML(http.StatusUnprocessableEntity, "editar_medico.html", gin.H{
		"Errores": errores,
		"Medico": domain.Medico{
			ID:           id,
			Nombre:       in.Nombre,
			Especialidad: in.Especialidad,
			Email:        in.Email,
		},
	})
}

// DeleteResponse is the structured acknowledgment of the delete endpoint.
type DeleteResponse struct {
	Ok      bool   `json:"ok"`
	Mensaje string `json:"mensaje"`
}

// EliminarMedico deletes one médico and answers with a JSON envelope
// regardless of the calling context. Deleting an absent id yields 404, not
// an error; repeating a delete is safe.
func (h *Handlers) EliminarMedico(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, DeleteResponse{Ok: false, Mensaje: "Médico no encontrado"})
		return
	}

	err := h.svc.Delete(c.Request.Context(), id)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, DeleteResponse{Ok: true, Mensaje: "Médico eliminado exitosamente"})
	case errors.Is(err, services.ErrMedicoNotFound):
		c.JSON(http.StatusNotFound, DeleteResponse{Ok: false, Mensaje: "Médico no encontrado"})
	default:
		fail(c, http.StatusServiceUnavailable, ErrCodeUnavailable, "Directorio no disponible")
	}
}
