package response

import "github.com/allotjaments/viatgers-api/internal/domain"

type RegistreViatger struct {
	Viatger          domain.Viatger `json:"viatger"`
	PendentsRestants int            `json:"pendents_restants"`
}

type Missatge struct {
	Missatge string `json:"missatge"`
}
