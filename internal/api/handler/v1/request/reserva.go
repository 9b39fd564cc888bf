package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreaReservaRequest struct {
	Client       string `json:"client"`
	Allotjament  string `json:"allotjament"`
	DataEntrada  string `json:"data_entrada" format:"YYYY-MM-DD"`
	DataSortida  string `json:"data_sortida" format:"YYYY-MM-DD"`
	NombreHostes int    `json:"nombre_hostes"`
}

func (req *CreaReservaRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Client, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Allotjament, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.DataEntrada, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&req.DataSortida, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&req.NombreHostes, validation.Required, validation.Min(1)),
	)
}

type ActualitzaReservaRequest struct {
	Client       string `json:"client"`
	Allotjament  string `json:"allotjament"`
	DataEntrada  string `json:"data_entrada" format:"YYYY-MM-DD"`
	DataSortida  string `json:"data_sortida" format:"YYYY-MM-DD"`
	NombreHostes int    `json:"nombre_hostes"`
}

func (req *ActualitzaReservaRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Client, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Allotjament, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.DataEntrada, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&req.DataSortida, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&req.NombreHostes, validation.Required, validation.Min(1)),
	)
}
