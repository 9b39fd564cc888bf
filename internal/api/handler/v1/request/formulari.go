package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/allotjaments/viatgers-api/internal/domain"
)

type GenerarFormulariRequest struct {
	ReservaID uint `json:"reserva_id"`
}

func (req *GenerarFormulariRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ReservaID, validation.Required, validation.Min(uint(1))),
	)
}

type EliminarFormulariRequest struct {
	ReservaID uint `json:"reserva_id"`
}

func (req *EliminarFormulariRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ReservaID, validation.Required, validation.Min(uint(1))),
	)
}

// ViatgerPublic is one traveller submission from the shared public form. The
// id is optional: when present the submission targets that slot, otherwise
// the server claims the first pendent one.
type ViatgerPublic struct {
	ID uint `json:"id"`

	Nom           string `json:"nom"`
	Cognoms       string `json:"cognoms"`
	SegonCognom   string `json:"segon_cognom"`
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
}

func (v *ViatgerPublic) Validate() error {
	return validation.ValidateStruct(
		v,
		validation.Field(&v.Nom, validation.Required, validation.Length(1, 100)),
		validation.Field(&v.Cognoms, validation.Required, validation.Length(1, 100)),
		validation.Field(&v.DNIPassaport, validation.Required, validation.By(validaDocument)),
		validation.Field(&v.DataNaixement, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&v.AdresaResidencia, validation.Required),
		validation.Field(&v.CiutatResidencia, validation.Required),
		validation.Field(&v.ProvinciaResidencia, validation.Required),
		validation.Field(&v.CodiPostalResidencia, validation.Required),
		validation.Field(&v.PaisResidencia, validation.Required),
		validation.Field(&v.Sexe, validation.In("home", "dona")),
		validation.Field(&v.Email, is.Email),
	)
}

func (v *ViatgerPublic) ToDomain() domain.Viatger {
	return domain.Viatger{
		Nom:           v.Nom,
		Cognoms:       v.Cognoms,
		DNIPassaport:  v.DNIPassaport,
		TipusDocument: v.TipusDocument,
		DataNaixement: v.DataNaixement,
		Nacionalitat:  v.Nacionalitat,
		Sexe:          v.Sexe,
		Telefon:       v.Telefon,
		Email:         v.Email,

		AdresaResidencia:     v.AdresaResidencia,
		CiutatResidencia:     v.CiutatResidencia,
		ProvinciaResidencia:  v.ProvinciaResidencia,
		CodiPostalResidencia: v.CodiPostalResidencia,
		PaisResidencia:       v.PaisResidencia,

		DadesMossos: domain.DadesMossos{
			SegonCognom: v.SegonCognom,
		},
	}
}

// RegistreViatgerRequest is the public POST payload. The wire shape carries a
// list for compatibility with older clients, but exactly one traveller is
// registered per submission.
type RegistreViatgerRequest struct {
	Viatgers []ViatgerPublic `json:"viatgers"`
}

func (req *RegistreViatgerRequest) Validate() error {
	if err := validation.ValidateStruct(
		req,
		validation.Field(&req.Viatgers, validation.Required, validation.Length(1, 1)),
	); err != nil {
		return err
	}

	return req.Viatgers[0].Validate()
}
