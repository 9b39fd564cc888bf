package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/allotjaments/viatgers-api/internal/domain"
	"github.com/allotjaments/viatgers-api/internal/repository"
	"github.com/allotjaments/viatgers-api/internal/repository/dao"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(db))

	return db
}

func seedReserva(t *testing.T, db *gorm.DB, nombreHostes int) domain.Reserva {
	t.Helper()

	reservaRepo := repository.NewReservaRepository(dao.NewReservaDAO(db))
	reserva, err := reservaRepo.Create(context.Background(), domain.Reserva{
		Client:       "Maria Puig",
		Allotjament:  "Cal Martí",
		DataEntrada:  time.Date(2024, 8, 14, 0, 0, 0, 0, time.UTC),
		DataSortida:  time.Date(2024, 8, 18, 0, 0, 0, 0, time.UTC),
		NombreHostes: nombreHostes,
	})
	require.NoError(t, err)

	return reserva
}

func newViatgerRepo(db *gorm.DB) *repository.ViatgerRepository {
	return repository.NewViatgerRepository(dao.NewViatgerDAO(db))
}

func newReservaRepo(db *gorm.DB) *repository.ReservaRepository {
	return repository.NewReservaRepository(dao.NewReservaDAO(db))
}

func newFormulariService(db *gorm.DB) *FormulariService {
	return NewFormulariService(
		repository.NewFormulariRepository(dao.NewFormulariDAO(db)),
		repository.NewViatgerRepository(dao.NewViatgerDAO(db)),
		repository.NewReservaRepository(dao.NewReservaDAO(db)),
		"http://localhost:4000",
	)
}

func viatgerComplet(nom string) domain.Viatger {
	return domain.Viatger{
		Nom:           nom,
		Cognoms:       "Bosch",
		DNIPassaport:  "12345678Z",
		TipusDocument: "dni",
		DataNaixement: "1990-05-02",
		Nacionalitat:  "ESP",
		Sexe:          "dona",

		AdresaResidencia:     "Carrer Major 1",
		CiutatResidencia:     "Figueres",
		ProvinciaResidencia:  "Girona",
		CodiPostalResidencia: "17600",
		PaisResidencia:       "Espanya",
	}
}
