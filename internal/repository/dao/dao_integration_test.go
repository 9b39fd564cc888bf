package dao

import (
	"context"
	"fmt"
	"testing"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupPostgres spins up a throwaway postgres container. The docker dependency
// keeps these tests out of -short runs.
func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker not available: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker not available: %v", err)
	}

	resource, err := pool.Run("postgres", "16-alpine", []string{
		"POSTGRES_USER=viatgers",
		"POSTGRES_PASSWORD=viatgers",
		"POSTGRES_DB=viatgers_test",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pool.Purge(resource)
	})

	dsn := fmt.Sprintf(
		"host=localhost port=%v user=viatgers password=viatgers dbname=viatgers_test sslmode=disable",
		resource.GetPort("5432/tcp"),
	)

	var db *gorm.DB
	err = pool.Retry(func() error {
		var openErr error
		db, openErr = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if openErr != nil {
			return openErr
		}

		sqlDB, openErr := db.DB()
		if openErr != nil {
			return openErr
		}

		return sqlDB.Ping()
	})
	require.NoError(t, err)
	require.NoError(t, InitTables(db))

	return db
}

func TestFormulariDAOUniqueReservaOnPostgres(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	reservaDAO := NewReservaDAO(db)
	reserva, err := reservaDAO.Insert(ctx, Reserva{
		Client:       "Maria Puig",
		Allotjament:  "Cal Martí",
		NombreHostes: 2,
	})
	require.NoError(t, err)

	formulariDAO := NewFormulariDAO(db)

	created, viatgers, err := formulariDAO.InsertWithViatgers(ctx, FormulariReserva{
		ReservaID: reserva.ID,
		Token:     "token-a",
	}, 2)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Len(t, viatgers, 2)

	_, _, err = formulariDAO.InsertWithViatgers(ctx, FormulariReserva{
		ReservaID: reserva.ID,
		Token:     "token-b",
	}, 2)
	require.ErrorIs(t, err, ErrFormulariJaGenerat)
}

func TestViatgerDAOFillSlotOnPostgres(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	reservaDAO := NewReservaDAO(db)
	reserva, err := reservaDAO.Insert(ctx, Reserva{
		Client:       "Maria Puig",
		Allotjament:  "Cal Martí",
		NombreHostes: 1,
	})
	require.NoError(t, err)

	viatgerDAO := NewViatgerDAO(db)
	slot, err := viatgerDAO.Insert(ctx, Viatger{
		ReservaID: reserva.ID,
		Estat:     "pendent",
	})
	require.NoError(t, err)

	dades := Viatger{
		Nom:           "Núria",
		Cognoms:       "Bosch",
		DNIPassaport:  "12345678Z",
		DataNaixement: "1990-05-02",
		Nacionalitat:  "ESP",
		Sexe:          "dona",
	}

	filled, err := viatgerDAO.FillSlot(ctx, slot.ID, reserva.ID, dades)
	require.NoError(t, err)
	assert.Equal(t, "omplert", filled.Estat)
	assert.Equal(t, "Núria", filled.Nom)

	// The estat guard rejects a second claim of the same slot.
	_, err = viatgerDAO.FillSlot(ctx, slot.ID, reserva.ID, dades)
	require.ErrorIs(t, err, ErrPlacaJaOmplerta)
}
