package domain

import "time"

// EstatFormulari is the authoritative lifecycle state of a traveller slot.
// Placeholder slots start as pendent, a public submission flips exactly one
// slot to omplert, and a Mossos export moves the included slots to enviat.
type EstatFormulari string

const (
	EstatPendent EstatFormulari = "pendent"
	EstatOmplert EstatFormulari = "omplert"
	EstatEnviat  EstatFormulari = "enviat"
)

// DadesMossos holds the extended field set required by the Mossos d'Esquadra
// registry beyond the basic identity block.
type DadesMossos struct {
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

type Viatger struct {
	ID        uint           `json:"id"`
	ReservaID uint           `json:"reserva_id"`
	Estat     EstatFormulari `json:"estat_formulari"`

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

	DadesMossos

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DadesCompletes reports whether the traveller carries every regulatory field
// the Mossos export requires.
func (v Viatger) DadesCompletes() bool {
	return v.Nom != "" &&
		v.Cognoms != "" &&
		v.DNIPassaport != "" &&
		v.DataNaixement != "" &&
		v.Nacionalitat != "" &&
		v.Sexe != ""
}

// FiltreViatgers narrows an admin listing. Zero values mean "no filter".
type FiltreViatgers struct {
	Cerca     string
	Estat     EstatFormulari
	ReservaID uint
}

type EstadistiquesViatgers struct {
	Total    int64 `json:"total"`
	Pendents int64 `json:"pendents"`
	Omplerts int64 `json:"omplerts"`
	Enviats  int64 `json:"enviats"`
	Complets int64 `json:"amb_dades_completes"`
}

// EstatCascada reports the outcome of the guest-count sync that may follow a
// traveller update. The primary update is never rolled back when the cascade
// fails.
type EstatCascada string

const (
	CascadaOK     EstatCascada = "ok"
	CascadaError  EstatCascada = "error"
	CascadaOmessa EstatCascada = "omesa"
)

type ActualitzacioViatger struct {
	Viatger      Viatger      `json:"viatger"`
	Cascada      EstatCascada `json:"cascada"`
	CascadaError string       `json:"cascada_error,omitempty"`
}
