package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDades() DadesViatger {
	return DadesViatger{
		Nom:           "Núria",
		Cognoms:       "Bosch",
		DNIPassaport:  "12345678Z",
		TipusDocument: "dni",
		DataNaixement: "1990-05-02",
		Nacionalitat:  "ESP",
		Sexe:          "dona",
	}
}

func TestDadesViatgerValidate(t *testing.T) {
	dades := validDades()
	require.NoError(t, dades.Validate())
}

func TestDadesViatgerValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DadesViatger)
	}{
		{"missing nom", func(d *DadesViatger) { d.Nom = "" }},
		{"missing cognoms", func(d *DadesViatger) { d.Cognoms = "" }},
		{"missing document", func(d *DadesViatger) { d.DNIPassaport = "" }},
		{"document too short", func(d *DadesViatger) { d.DNIPassaport = "ab" }},
		{"document too long", func(d *DadesViatger) { d.DNIPassaport = "A12345678901234567890" }},
		{"document bad chars", func(d *DadesViatger) { d.DNIPassaport = "12 34" }},
		{"document leading dash", func(d *DadesViatger) { d.DNIPassaport = "-1234" }},
		{"unknown document type", func(d *DadesViatger) { d.TipusDocument = "carnet" }},
		{"bad birth date", func(d *DadesViatger) { d.DataNaixement = "02/05/1990" }},
		{"bad sexe", func(d *DadesViatger) { d.Sexe = "altre" }},
		{"bad email", func(d *DadesViatger) { d.Email = "not-an-email" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dades := validDades()
			tc.mutate(&dades)
			assert.Error(t, dades.Validate())
		})
	}
}

func TestValidaDocument(t *testing.T) {
	assert.NoError(t, validaDocument("X1234567L"))
	assert.NoError(t, validaDocument("AB-123-45"))
	assert.NoError(t, validaDocument(""))
	assert.Error(t, validaDocument("ab"))
	assert.Error(t, validaDocument("número"))
}

func TestCreaViatgerRequestRequiresReserva(t *testing.T) {
	req := CreaViatgerRequest{DadesViatger: validDades()}
	assert.Error(t, req.Validate())

	req.ReservaID = 3
	assert.NoError(t, req.Validate())
}

func TestRegistreViatgerRequestValidate(t *testing.T) {
	viatger := ViatgerPublic{
		Nom:           "Núria",
		Cognoms:       "Bosch",
		DNIPassaport:  "12345678Z",
		DataNaixement: "1990-05-02",

		AdresaResidencia:     "Carrer Major 1",
		CiutatResidencia:     "Figueres",
		ProvinciaResidencia:  "Girona",
		CodiPostalResidencia: "17600",
		PaisResidencia:       "Espanya",
	}

	req := RegistreViatgerRequest{}
	assert.Error(t, req.Validate())

	req.Viatgers = []ViatgerPublic{viatger}
	assert.NoError(t, req.Validate())

	req.Viatgers = []ViatgerPublic{viatger, viatger}
	assert.Error(t, req.Validate())

	incomplete := viatger
	incomplete.PaisResidencia = ""
	req.Viatgers = []ViatgerPublic{incomplete}
	assert.Error(t, req.Validate())
}
