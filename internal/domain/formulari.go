package domain

import (
	"fmt"
	"strings"
	"time"
)

// FormulariReserva is the registration-link record of a reservation. The token
// is the only authorization needed to reach the public form. At most one live
// record exists per reservation.
type FormulariReserva struct {
	ID        uint      `json:"id"`
	ReservaID uint      `json:"reserva_id"`
	Token     string    `json:"token_formulari"`
	CreatedAt time.Time `json:"created_at"`
}

func (f FormulariReserva) PublicURL(baseURL string) string {
	return fmt.Sprintf("%v/formulari/%v", strings.TrimSuffix(baseURL, "/"), f.Token)
}

// EnllacFormulari is what staff gets back when generating a registration link.
type EnllacFormulari struct {
	Formulari FormulariReserva `json:"formulari"`
	Viatgers  []Viatger        `json:"viatgers"`
	Enllac    string           `json:"enllac"`
}

// FitxaFormulari is the public view of a registration link: the reservation,
// its traveller slots and how many are still waiting for data.
type FitxaFormulari struct {
	Formulari FormulariReserva `json:"formulari"`
	Reserva   Reserva          `json:"reserva"`
	Viatgers  []Viatger        `json:"viatgers"`
	Pendents  int              `json:"pendents"`
}
