package services

import (
	"strings"
	"testing"
)

func validInput() MedicoInput {
	return MedicoInput{
		Nombre:       "Ana García",
		Especialidad: "Cardiología",
		Email:        "ana@example.com",
	}
}

func TestValidateMedico_ValidInputPassesUnchanged(t *testing.T) {
	out, verr := ValidateMedico(validInput())
	if verr != nil {
		t.Fatalf("unexpected validation error: %v", verr)
	}
	if out.Nombre != "Ana García" || out.Especialidad != "Cardiología" || out.Email != "ana@example.com" {
		t.Fatalf("unexpected normalization: %+v", out)
	}
}

func TestValidateMedico_TrimsAndTitleCases(t *testing.T) {
	in := MedicoInput{
		Nombre:       "  ana maría garcía  ",
		Especialidad: "cardiología INTERVENCIONISTA",
		Email:        "ana@example.com",
	}
	out, verr := ValidateMedico(in)
	if verr != nil {
		t.Fatalf("unexpected validation error: %v", verr)
	}
	if out.Nombre != "Ana María García" {
		t.Fatalf("nombre not title-cased: %q", out.Nombre)
	}
	if out.Especialidad != "Cardiología Intervencionista" {
		t.Fatalf("especialidad not title-cased: %q", out.Especialidad)
	}
}

func TestValidateMedico_FieldRules(t *testing.T) {
	cases := []struct {
		name    string
		nombre  string
		mensaje string
	}{
		{"empty", "", MsgCampoVacio},
		{"whitespace only", "   ", MsgCampoVacio},
		{"single char", "A", MsgMuyCorto},
		{"too long", strings.Repeat("a", 51), MsgMuyLargo},
		{"digits", "Ana2", MsgSoloLetras},
		{"punctuation", "Dr. Ana", MsgSoloLetras},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			in.Nombre = tc.nombre
			_, verr := ValidateMedico(in)
			if verr == nil {
				t.Fatalf("expected validation error for nombre=%q", tc.nombre)
			}
			if len(verr.Fields) != 1 || verr.Fields[0].Campo != "Nombre" || verr.Fields[0].Mensaje != tc.mensaje {
				t.Fatalf("unexpected fields: %+v", verr.Fields)
			}
		})
	}
}

func TestValidateMedico_SingleCharMessageFormat(t *testing.T) {
	in := validInput()
	in.Nombre = "A"
	_, verr := ValidateMedico(in)
	if verr == nil {
		t.Fatalf("expected validation error")
	}
	got := verr.Messages()
	if len(got) != 1 || got[0] != "Nombre: Debe tener al menos 2 caracteres" {
		t.Fatalf("unexpected messages: %v", got)
	}
}

func TestValidateMedico_BoundaryLengthsAccepted(t *testing.T) {
	for _, v := range []string{"Ab", strings.Repeat("a", 50)} {
		in := validInput()
		in.Especialidad = v
		if _, verr := ValidateMedico(in); verr != nil {
			t.Fatalf("length %d should be valid: %v", len(v), verr)
		}
	}
}

func TestValidateMedico_AccentedLettersAllowed(t *testing.T) {
	in := validInput()
	in.Nombre = "ñoño müller"
	out, verr := ValidateMedico(in)
	if verr != nil {
		t.Fatalf("accented letters rejected: %v", verr)
	}
	if out.Nombre != "Ñoño Müller" {
		t.Fatalf("unexpected title case: %q", out.Nombre)
	}
}

func TestValidateMedico_EmailSyntax(t *testing.T) {
	for _, bad := range []string{"", "ana", "ana@", "@example.com", "ana example.com"} {
		in := validInput()
		in.Email = bad
		_, verr := ValidateMedico(in)
		if verr == nil {
			t.Fatalf("expected error for email %q", bad)
		}
		last := verr.Fields[len(verr.Fields)-1]
		if last.Campo != "Email" || last.Mensaje != MsgEmailInvalid {
			t.Fatalf("unexpected email error for %q: %+v", bad, last)
		}
	}
}

func TestValidateMedico_CollectsAllFailuresInDeclarationOrder(t *testing.T) {
	_, verr := ValidateMedico(MedicoInput{Nombre: "", Especialidad: "X", Email: "bad"})
	if verr == nil {
		t.Fatalf("expected validation error")
	}
	got := verr.Messages()
	want := []string{
		"Nombre: " + MsgCampoVacio,
		"Especialidad: " + MsgMuyCorto,
		"Email: " + MsgEmailInvalid,
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d messages, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("message %d: got %q want %q", i, got[i], want[i])
		}
	}
}
