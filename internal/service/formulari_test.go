package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allotjaments/viatgers-api/internal/domain"
)

func TestGenerateForReserva(t *testing.T) {
	db := setupDB(t)
	svc := newFormulariService(db)
	ctx := context.Background()

	reserva := seedReserva(t, db, 3)

	enllac, err := svc.GenerateForReserva(ctx, reserva.ID)
	require.NoError(t, err)

	assert.Equal(t, reserva.ID, enllac.Formulari.ReservaID)
	assert.NotEmpty(t, enllac.Formulari.Token)
	assert.Equal(t, "http://localhost:4000/formulari/"+enllac.Formulari.Token, enllac.Enllac)

	require.Len(t, enllac.Viatgers, 3)
	for _, v := range enllac.Viatgers {
		assert.Equal(t, domain.EstatPendent, v.Estat)
		assert.Equal(t, reserva.ID, v.ReservaID)
	}
}

func TestGenerateForReservaDuplicate(t *testing.T) {
	db := setupDB(t)
	svc := newFormulariService(db)
	ctx := context.Background()

	reserva := seedReserva(t, db, 2)

	_, err := svc.GenerateForReserva(ctx, reserva.ID)
	require.NoError(t, err)

	_, err = svc.GenerateForReserva(ctx, reserva.ID)
	require.ErrorIs(t, err, ErrFormulariJaGenerat)
}

func TestGenerateForReservaUnknownReserva(t *testing.T) {
	db := setupDB(t)
	svc := newFormulariService(db)

	_, err := svc.GenerateForReserva(context.Background(), 999)
	require.ErrorIs(t, err, ErrReservaNotFound)
}

func TestFitxaPublica(t *testing.T) {
	db := setupDB(t)
	svc := newFormulariService(db)
	ctx := context.Background()

	reserva := seedReserva(t, db, 2)
	enllac, err := svc.GenerateForReserva(ctx, reserva.ID)
	require.NoError(t, err)

	// Reloading the form before anyone submits must not consume slots.
	for i := 0; i < 3; i++ {
		fitxa, err := svc.FitxaPublica(ctx, enllac.Formulari.Token)
		require.NoError(t, err)

		assert.Equal(t, reserva.ID, fitxa.Reserva.ID)
		assert.Len(t, fitxa.Viatgers, 2)
		assert.Equal(t, 2, fitxa.Pendents)
	}
}

func TestFitxaPublicaUnknownToken(t *testing.T) {
	db := setupDB(t)
	svc := newFormulariService(db)

	_, err := svc.FitxaPublica(context.Background(), "no-such-token")
	require.ErrorIs(t, err, ErrFormulariNotFound)
}

func TestRegistraViatger(t *testing.T) {
	db := setupDB(t)
	svc := newFormulariService(db)
	ctx := context.Background()

	reserva := seedReserva(t, db, 2)
	enllac, err := svc.GenerateForReserva(ctx, reserva.ID)
	require.NoError(t, err)
	token := enllac.Formulari.Token

	filled, pendents, err := svc.RegistraViatger(ctx, token, 0, viatgerComplet("Núria"))
	require.NoError(t, err)

	assert.Equal(t, domain.EstatOmplert, filled.Estat)
	assert.Equal(t, "Núria", filled.Nom)
	assert.Equal(t, reserva.ID, filled.ReservaID)
	assert.Equal(t, 1, pendents)

	// Exactly one slot flipped.
	fitxa, err := svc.FitxaPublica(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, 1, fitxa.Pendents)
}

func TestRegistraViatgerTargetedSlot(t *testing.T) {
	db := setupDB(t)
	svc := newFormulariService(db)
	ctx := context.Background()

	reserva := seedReserva(t, db, 2)
	enllac, err := svc.GenerateForReserva(ctx, reserva.ID)
	require.NoError(t, err)

	target := enllac.Viatgers[1]

	filled, pendents, err := svc.RegistraViatger(ctx, enllac.Formulari.Token, target.ID, viatgerComplet("Pere"))
	require.NoError(t, err)

	assert.Equal(t, target.ID, filled.ID)
	assert.Equal(t, 1, pendents)
}

func TestRegistraViatgerSlotAlreadyFilled(t *testing.T) {
	db := setupDB(t)
	svc := newFormulariService(db)
	ctx := context.Background()

	reserva := seedReserva(t, db, 2)
	enllac, err := svc.GenerateForReserva(ctx, reserva.ID)
	require.NoError(t, err)
	token := enllac.Formulari.Token

	target := enllac.Viatgers[0]

	_, _, err = svc.RegistraViatger(ctx, token, target.ID, viatgerComplet("Núria"))
	require.NoError(t, err)

	// A stale client re-targeting the same slot must not overwrite the data.
	_, _, err = svc.RegistraViatger(ctx, token, target.ID, viatgerComplet("Pere"))
	require.ErrorIs(t, err, ErrPlacaJaOmplerta)

	fitxa, err := svc.FitxaPublica(ctx, token)
	require.NoError(t, err)
	for _, v := range fitxa.Viatgers {
		if v.ID == target.ID {
			assert.Equal(t, "Núria", v.Nom)
		}
	}
}

func TestRegistraViatgerAllFilled(t *testing.T) {
	db := setupDB(t)
	svc := newFormulariService(db)
	ctx := context.Background()

	reserva := seedReserva(t, db, 1)
	enllac, err := svc.GenerateForReserva(ctx, reserva.ID)
	require.NoError(t, err)
	token := enllac.Formulari.Token

	_, pendents, err := svc.RegistraViatger(ctx, token, 0, viatgerComplet("Núria"))
	require.NoError(t, err)
	assert.Equal(t, 0, pendents)

	_, _, err = svc.RegistraViatger(ctx, token, 0, viatgerComplet("Pere"))
	require.ErrorIs(t, err, ErrTotsElsViatgersRegistrats)
}

func TestRegistraViatgerUnknownToken(t *testing.T) {
	db := setupDB(t)
	svc := newFormulariService(db)

	_, _, err := svc.RegistraViatger(context.Background(), "no-such-token", 0, viatgerComplet("Núria"))
	require.ErrorIs(t, err, ErrFormulariNotFound)
}

func TestDeleteForReserva(t *testing.T) {
	db := setupDB(t)
	svc := newFormulariService(db)
	viatgerSvc := NewViatgerService(newViatgerRepo(db), newReservaRepo(db))
	ctx := context.Background()

	reserva := seedReserva(t, db, 2)
	enllac, err := svc.GenerateForReserva(ctx, reserva.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteForReserva(ctx, reserva.ID))

	_, err = svc.FitxaPublica(ctx, enllac.Formulari.Token)
	require.ErrorIs(t, err, ErrFormulariNotFound)

	viatgers, err := viatgerSvc.List(ctx, domain.FiltreViatgers{ReservaID: reserva.ID})
	require.NoError(t, err)
	assert.Empty(t, viatgers)
}

func TestDeleteForReservaUnknown(t *testing.T) {
	db := setupDB(t)
	svc := newFormulariService(db)

	err := svc.DeleteForReserva(context.Background(), 999)
	require.ErrorIs(t, err, ErrFormulariNotFound)
}

func TestGetByReserva(t *testing.T) {
	db := setupDB(t)
	svc := newFormulariService(db)
	ctx := context.Background()

	reserva := seedReserva(t, db, 2)

	_, err := svc.GetByReserva(ctx, reserva.ID)
	require.ErrorIs(t, err, ErrFormulariNotFound)

	generated, err := svc.GenerateForReserva(ctx, reserva.ID)
	require.NoError(t, err)

	enllac, err := svc.GetByReserva(ctx, reserva.ID)
	require.NoError(t, err)

	assert.Equal(t, generated.Formulari.Token, enllac.Formulari.Token)
	assert.Equal(t, generated.Enllac, enllac.Enllac)
	assert.Len(t, enllac.Viatgers, 2)
}
