// Package services – field validation
//
// This file implements the validation and normalization rules applied to
// médico form input on the create and update paths. Read paths never
// re-validate: historical rows may predate the current rules and must be
// rendered as stored.
//
// Rules for nombre and especialidad, in order:
//  1. reject empty or all-whitespace values
//  2. trim surrounding whitespace
//  3. reject trimmed length < 2 runes
//  4. reject trimmed length > 50 runes
//  5. reject any character outside Spanish letters and spaces
//  6. rewrite to title case (canonical stored form)
//
// The e-mail address is checked for syntactic shape only and is stored
// exactly as submitted.
package services

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Validation messages, kept in Spanish to match the rendered pages.
const (
	MsgCampoVacio   = "El campo no puede estar vacío"
	MsgMuyCorto     = "Debe tener al menos 2 caracteres"
	MsgMuyLargo     = "No puede exceder 50 caracteres"
	MsgSoloLetras   = "Solo se permiten letras y espacios"
	MsgEmailInvalid = "Debe ser un correo electrónico válido"
)

// letrasRE accepts Spanish letters (including accented vowels, ñ and ü)
// and whitespace, nothing else.
var letrasRE = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑüÜ\s]+$`)

// tituloCase capitalizes the first letter of each word. A cases.Caser is
// stateful, so one is created per call rather than shared across requests.
func tituloCase(s string) string {
	return cases.Title(language.Spanish).String(s)
}

// validate performs the syntactic e-mail check. A single instance is safe
// for concurrent use.
var validate = validator.New()

// FieldError describes one validation failure on one form field.
type FieldError struct {
	// Campo is the capitalized field name as declared on the form
	// (Nombre, Especialidad, Email).
	Campo string
	// Mensaje is the human-readable reason, one of the Msg constants.
	Mensaje string
}

// Error renders the "<Campo>: <mensaje>" form shown on re-rendered pages.
func (e FieldError) Error() string { return e.Campo + ": " + e.Mensaje }

// ValidationError aggregates every field failure of one submission, in the
// order the fields are declared on the form.
type ValidationError struct {
	Fields []FieldError
}

// Error joins the individual field messages; handlers usually render
// Messages() instead.
func (e *ValidationError) Error() string {
	msgs := e.Messages()
	return strings.Join(msgs, "; ")
}

// Messages returns the user-facing message list, one entry per failed field.
func (e *ValidationError) Messages() []string {
	out := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		out = append(out, f.Error())
	}
	return out
}

// MedicoInput carries the three raw form fields of a create or update
// submission, before validation.
type MedicoInput struct {
	Nombre       string
	Especialidad string
	Email        string
}

// ValidateMedico applies the field rules to in and returns the normalized
// values (trimmed, title-cased names; e-mail untouched). On any failure it
// returns a *ValidationError listing every failed field and performs no
// normalization of the failing fields.
func ValidateMedico(in MedicoInput) (MedicoInput, *ValidationError) {
	var verr ValidationError

	nombre, err := validarTexto(in.Nombre)
	if err != nil {
		verr.Fields = append(verr.Fields, FieldError{Campo: "Nombre", Mensaje: err.Mensaje})
	}
	especialidad, err := validarTexto(in.Especialidad)
	if err != nil {
		verr.Fields = append(verr.Fields, FieldError{Campo: "Especialidad", Mensaje: err.Mensaje})
	}
	if validate.Var(in.Email, "required,email") != nil {
		verr.Fields = append(verr.Fields, FieldError{Campo: "Email", Mensaje: MsgEmailInvalid})
	}

	if len(verr.Fields) > 0 {
		return in, &verr
	}
	return MedicoInput{
		Nombre:       nombre,
		Especialidad: especialidad,
		Email:        in.Email,
	}, nil
}

// validarTexto runs the shared nombre/especialidad rule chain and returns
// the canonical (trimmed, title-cased) value.
func validarTexto(v string) (string, *FieldError) {
	if strings.TrimSpace(v) == "" {
		return "", &FieldError{Mensaje: MsgCampoVacio}
	}
	v = strings.TrimSpace(v)
	n := utf8.RuneCountInString(v)
	if n < 2 {
		return "", &FieldError{Mensaje: MsgMuyCorto}
	}
	if n > 50 {
		return "", &FieldError{Mensaje: MsgMuyLargo}
	}
	if !letrasRE.MatchString(v) {
		return "", &FieldError{Mensaje: MsgSoloLetras}
	}
	return tituloCase(v), nil
}
