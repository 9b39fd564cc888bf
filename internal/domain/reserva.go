package domain

import "time"

type Reserva struct {
	ID           uint      `json:"id"`
	Client       string    `json:"client"`
	Allotjament  string    `json:"allotjament"`
	DataEntrada  time.Time `json:"data_entrada"`
	DataSortida  time.Time `json:"data_sortida"`
	NombreHostes int       `json:"nombre_hostes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
