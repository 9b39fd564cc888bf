// Package mossos renders the traveller registry file consumed by the Mossos
// d'Esquadra hostelería system.
//
// The file is pipe-delimited with CRLF line endings. The first record
// identifies the establishment and the batch, the rest carry one traveller
// each:
//
//	1|codi establiment|nom establiment|municipi|yyyyMMdd|HHmm|n viatgers
//	2|document|tipus|caducitat|primer cognom|segon cognom|nom|sexe|naixement|nacionalitat|data entrada
//
// Text fields are upper-cased and stripped of diacritics so the file stays
// Latin-1 safe.
package mossos

import (
	"bytes"
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/allotjaments/viatgers-api/internal/domain"
)

type Establiment struct {
	Codi     string
	Nom      string
	Municipi string
}

func Encode(est Establiment, reserva domain.Reserva, viatgers []domain.Viatger, ara time.Time) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "1|%v|%v|%v|%v|%v|%v\r\n",
		est.Codi,
		normalitza(est.Nom),
		normalitza(est.Municipi),
		ara.Format("20060102"),
		ara.Format("1504"),
		len(viatgers),
	)

	entrada := reserva.DataEntrada.Format("20060102")
	for _, v := range viatgers {
		fmt.Fprintf(&buf, "2|%v|%v|%v|%v|%v|%v|%v|%v|%v|%v\r\n",
			strings.ToUpper(v.DNIPassaport),
			codiTipusDocument(v.TipusDocument),
			dataCurta(v.CaducitatDocument),
			normalitza(v.Cognoms),
			normalitza(v.SegonCognom),
			normalitza(v.Nom),
			codiSexe(v.Sexe),
			dataCurta(v.DataNaixement),
			strings.ToUpper(v.Nacionalitat),
			entrada,
		)
	}

	return buf.Bytes()
}

// FileName builds the artifact name the download endpoint is keyed by.
func FileName(codiEstabliment string, ara time.Time) string {
	return fmt.Sprintf("%v.%v.txt", codiEstabliment, ara.Format("200601021504"))
}

var treuAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalitza(s string) string {
	net, _, err := transform.String(treuAccents, s)
	if err != nil {
		net = s
	}

	return strings.ToUpper(strings.TrimSpace(net))
}

// dataCurta turns a stored "2006-01-02" date into the registry's yyyyMMdd.
// Empty or malformed values collapse to an empty field.
func dataCurta(s string) string {
	if s == "" {
		return ""
	}

	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		return ""
	}

	return parsed.Format("20060102")
}

func codiTipusDocument(tipus string) string {
	switch strings.ToLower(tipus) {
	case "dni":
		return "D"
	case "passaport":
		return "P"
	case "nie", "permis_residencia":
		return "N"
	case "permis_conduir":
		return "C"
	default:
		return "D"
	}
}

func codiSexe(sexe string) string {
	switch strings.ToLower(sexe) {
	case "home", "h", "m":
		return "H"
	case "dona", "d", "f":
		return "D"
	default:
		return strings.ToUpper(sexe)
	}
}
