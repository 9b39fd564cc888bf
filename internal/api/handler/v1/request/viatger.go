package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/allotjaments/viatgers-api/internal/domain"
)

// documentPattern gates length via lookahead and then the character set:
// DNI/NIE/passport numbers are 3-20 alphanumerics with optional dashes.
const documentPattern = `^(?=.{3,20}$)[A-Za-z0-9][A-Za-z0-9\-]*$`

var (
	documentRegexp = regexp2.MustCompile(documentPattern, regexp2.None)

	errInvalidDocument = errors.New("el número de document ha de tenir entre 3 i 20 caràcters alfanumèrics")
)

func validaDocument(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	ok, err := documentRegexp.MatchString(s)
	if err != nil || !ok {
		return errInvalidDocument
	}

	return nil
}

// DadesViatger is the admin-editable field set of a traveller, including the
// extended Mossos block.
type DadesViatger struct {
	Nom           string `json:"nom"`
	Cognoms       string `json:"cognoms"`
	DNIPassaport  string `json:"dni_passaport"`
	TipusDocument string `json:"tipus_document"`
	DataNaixement string `json:"data_naixement"`
	Nacionalitat  string `json:"nacionalitat"`
	Sexe          string `json:"sexe"`
	Telefon       string `json:"telefon"`
	Email         string `json:"email"`

	AdresaResidencia     string `json:"adresa_residencia"`
	CiutatResidencia     string `json:"ciutat_residencia"`
	ProvinciaResidencia  string `json:"provincia_residencia"`
	CodiPostalResidencia string `json:"codi_postal_residencia"`
	PaisResidencia       string `json:"pais_residencia"`

	SegonCognom       string `json:"segon_cognom"`
	CaducitatDocument string `json:"caducitat_document"`
	NumeroSuport      string `json:"numero_suport"`
	CodiParentiu      string `json:"codi_parentiu"`
	NumeroContracte   string `json:"numero_contracte"`
	DataContracte     string `json:"data_contracte"`
	HoraEntrada       string `json:"hora_entrada"`
	HoraSortida       string `json:"hora_sortida"`
	NumeroViatgers    int    `json:"numero_viatgers"`
	NumeroHabitacions int    `json:"numero_habitacions"`
	FormaPagament     string `json:"forma_pagament"`
	Internet          bool   `json:"internet"`
	AdresaPostal      string `json:"adresa_postal"`
	MunicipiPostal    string `json:"municipi_postal"`
	CodiPostal        string `json:"codi_postal"`
	PaisPostal        string `json:"pais_postal"`
}

func (d *DadesViatger) Validate() error {
	return validation.ValidateStruct(
		d,
		validation.Field(&d.Nom, validation.Required, validation.Length(1, 100)),
		validation.Field(&d.Cognoms, validation.Required, validation.Length(1, 100)),
		validation.Field(&d.DNIPassaport, validation.Required, validation.By(validaDocument)),
		validation.Field(&d.TipusDocument, validation.In("dni", "nie", "passaport", "permis_residencia", "permis_conduir")),
		validation.Field(&d.DataNaixement, validation.Date("2006-01-02")),
		validation.Field(&d.CaducitatDocument, validation.Date("2006-01-02")),
		validation.Field(&d.DataContracte, validation.Date("2006-01-02")),
		validation.Field(&d.Sexe, validation.In("home", "dona")),
		validation.Field(&d.Email, is.Email),
		validation.Field(&d.NumeroViatgers, validation.Min(0)),
		validation.Field(&d.NumeroHabitacions, validation.Min(0)),
	)
}

func (d *DadesViatger) ToDomain() domain.Viatger {
	return domain.Viatger{
		Nom:           d.Nom,
		Cognoms:       d.Cognoms,
		DNIPassaport:  d.DNIPassaport,
		TipusDocument: d.TipusDocument,
		DataNaixement: d.DataNaixement,
		Nacionalitat:  d.Nacionalitat,
		Sexe:          d.Sexe,
		Telefon:       d.Telefon,
		Email:         d.Email,

		AdresaResidencia:     d.AdresaResidencia,
		CiutatResidencia:     d.CiutatResidencia,
		ProvinciaResidencia:  d.ProvinciaResidencia,
		CodiPostalResidencia: d.CodiPostalResidencia,
		PaisResidencia:       d.PaisResidencia,

		DadesMossos: domain.DadesMossos{
			SegonCognom:       d.SegonCognom,
			CaducitatDocument: d.CaducitatDocument,
			NumeroSuport:      d.NumeroSuport,
			CodiParentiu:      d.CodiParentiu,
			NumeroContracte:   d.NumeroContracte,
			DataContracte:     d.DataContracte,
			HoraEntrada:       d.HoraEntrada,
			HoraSortida:       d.HoraSortida,
			NumeroViatgers:    d.NumeroViatgers,
			NumeroHabitacions: d.NumeroHabitacions,
			FormaPagament:     d.FormaPagament,
			Internet:          d.Internet,
			AdresaPostal:      d.AdresaPostal,
			MunicipiPostal:    d.MunicipiPostal,
			CodiPostal:        d.CodiPostal,
			PaisPostal:        d.PaisPostal,
		},
	}
}

type CreaViatgerRequest struct {
	ReservaID uint `json:"reserva_id"`
	DadesViatger
}

func (req *CreaViatgerRequest) Validate() error {
	if err := validation.ValidateStruct(
		req,
		validation.Field(&req.ReservaID, validation.Required, validation.Min(uint(1))),
	); err != nil {
		return err
	}

	return req.DadesViatger.Validate()
}

type ActualitzaViatgerRequest struct {
	DadesViatger
}

func (req *ActualitzaViatgerRequest) Validate() error {
	return req.DadesViatger.Validate()
}
