package mossos

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allotjaments/viatgers-api/internal/domain"
)

func TestEncode(t *testing.T) {
	est := Establiment{
		Codi:     "0000000123",
		Nom:      "Cal Martí",
		Municipi: "Figueres",
	}
	reserva := domain.Reserva{
		ID:          7,
		DataEntrada: time.Date(2024, 8, 14, 0, 0, 0, 0, time.UTC),
	}
	viatgers := []domain.Viatger{
		{
			Nom:           "Núria",
			Cognoms:       "Bosch",
			DNIPassaport:  "12345678z",
			TipusDocument: "dni",
			DataNaixement: "1990-05-02",
			Nacionalitat:  "ESP",
			Sexe:          "dona",
			DadesMossos: domain.DadesMossos{
				SegonCognom:       "Vilà",
				CaducitatDocument: "2030-01-31",
			},
		},
		{
			Nom:           "John",
			Cognoms:       "Smith",
			DNIPassaport:  "AB1234567",
			TipusDocument: "passaport",
			DataNaixement: "1985-12-24",
			Nacionalitat:  "GBR",
			Sexe:          "home",
		},
	}
	ara := time.Date(2024, 8, 15, 9, 30, 0, 0, time.UTC)

	got := Encode(est, reserva, viatgers, ara)

	want := "1|0000000123|CAL MARTI|FIGUERES|20240815|0930|2\r\n" +
		"2|12345678Z|D|20300131|BOSCH|VILA|NURIA|D|19900502|ESP|20240814\r\n" +
		"2|AB1234567|P||SMITH||JOHN|H|19851224|GBR|20240814\r\n"
	require.Equal(t, want, string(got))
}

func TestEncodeEmptyList(t *testing.T) {
	ara := time.Date(2024, 8, 15, 9, 30, 0, 0, time.UTC)

	got := Encode(Establiment{Codi: "1"}, domain.Reserva{DataEntrada: ara}, nil, ara)

	lines := strings.Split(strings.TrimSuffix(string(got), "\r\n"), "\r\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "1|"))
	assert.True(t, strings.HasSuffix(lines[0], "|0"))
}

func TestFileName(t *testing.T) {
	ara := time.Date(2024, 8, 15, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, "0000000123.202408150930.txt", FileName("0000000123", ara))
}

func TestNormalitza(t *testing.T) {
	assert.Equal(t, "MARTI", normalitza("Martí"))
	assert.Equal(t, "PERPINYA", normalitza("  Perpinyà "))
	assert.Equal(t, "", normalitza(""))
}

func TestDataCurta(t *testing.T) {
	assert.Equal(t, "19900502", dataCurta("1990-05-02"))
	assert.Equal(t, "", dataCurta(""))
	assert.Equal(t, "", dataCurta("02/05/1990"))
}

func TestCodiTipusDocument(t *testing.T) {
	assert.Equal(t, "D", codiTipusDocument("dni"))
	assert.Equal(t, "P", codiTipusDocument("passaport"))
	assert.Equal(t, "N", codiTipusDocument("nie"))
	assert.Equal(t, "N", codiTipusDocument("permis_residencia"))
	assert.Equal(t, "C", codiTipusDocument("permis_conduir"))
	assert.Equal(t, "D", codiTipusDocument(""))
}

func TestCodiSexe(t *testing.T) {
	assert.Equal(t, "H", codiSexe("home"))
	assert.Equal(t, "D", codiSexe("dona"))
	assert.Equal(t, "H", codiSexe("M"))
	assert.Equal(t, "D", codiSexe("f"))
}
