package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/allotjaments/viatgers-api/internal/config"
	"github.com/allotjaments/viatgers-api/internal/domain"
)

func newMossosService(t *testing.T, db *gorm.DB) *MossosService {
	t.Helper()

	svc := NewMossosService(newViatgerRepo(db), newReservaRepo(db), &config.MossosConfig{
		CodiEstabliment: "0000000123",
		NomEstabliment:  "Cal Martí",
		Municipi:        "Figueres",
		ExportDir:       t.TempDir(),
	})
	svc.now = func() time.Time {
		return time.Date(2024, 8, 15, 9, 30, 0, 0, time.UTC)
	}

	return svc
}

func TestGenerateTXT(t *testing.T) {
	db := setupDB(t)
	svc := newMossosService(t, db)
	viatgerSvc := NewViatgerService(newViatgerRepo(db), newReservaRepo(db))
	ctx := context.Background()

	reserva := seedReserva(t, db, 2)

	complet := viatgerComplet("Núria")
	complet.ReservaID = reserva.ID
	_, err := viatgerSvc.Create(ctx, complet)
	require.NoError(t, err)

	parcial := domain.Viatger{ReservaID: reserva.ID, Nom: "Pere"}
	_, err = viatgerSvc.Create(ctx, parcial)
	require.NoError(t, err)

	fileName, stats, err := svc.GenerateTXT(ctx, reserva.ID)
	require.NoError(t, err)

	assert.Equal(t, "0000000123.202408150930.txt", fileName)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.Complets)

	contingut, err := os.ReadFile(filepath.Join(svc.conf.ExportDir, fileName))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(contingut), "\r\n"), "\r\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "1|0000000123|CAL MARTI|FIGUERES|20240815|0930|1", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "2|12345678Z|D|"))

	// The incomplete traveller stays out of the file and keeps its state.
	viatgers, err := viatgerSvc.List(ctx, domain.FiltreViatgers{ReservaID: reserva.ID})
	require.NoError(t, err)
	for _, v := range viatgers {
		if v.Nom == "Núria" {
			assert.Equal(t, domain.EstatEnviat, v.Estat)
		} else {
			assert.Equal(t, domain.EstatPendent, v.Estat)
		}
	}
}

func TestGenerateTXTNoCompleteTravellers(t *testing.T) {
	db := setupDB(t)
	svc := newMossosService(t, db)
	viatgerSvc := NewViatgerService(newViatgerRepo(db), newReservaRepo(db))
	ctx := context.Background()

	reserva := seedReserva(t, db, 1)

	parcial := domain.Viatger{ReservaID: reserva.ID, Nom: "Pere"}
	_, err := viatgerSvc.Create(ctx, parcial)
	require.NoError(t, err)

	fileName, stats, err := svc.GenerateTXT(ctx, reserva.ID)
	require.ErrorIs(t, err, ErrCapViatgerComplet)

	// The rejection still carries the breakdown so the caller can explain it.
	assert.Empty(t, fileName)
	assert.Equal(t, int64(1), stats.Total)
	assert.Equal(t, int64(0), stats.Complets)
}

func TestGenerateTXTUnknownReserva(t *testing.T) {
	db := setupDB(t)
	svc := newMossosService(t, db)

	_, _, err := svc.GenerateTXT(context.Background(), 999)
	require.ErrorIs(t, err, ErrReservaNotFound)
}

func TestExportPath(t *testing.T) {
	db := setupDB(t)
	svc := newMossosService(t, db)

	fileName := "0000000123.202408150930.txt"
	fullPath := filepath.Join(svc.conf.ExportDir, fileName)
	require.NoError(t, os.WriteFile(fullPath, []byte("1|x\r\n"), 0o644))

	path, err := svc.ExportPath(fileName)
	require.NoError(t, err)
	assert.Equal(t, fullPath, path)
}

func TestExportPathRejectsTraversal(t *testing.T) {
	db := setupDB(t)
	svc := newMossosService(t, db)

	for _, nom := range []string{"", "../secret.txt", "sub/dir.txt", "fitxer.csv"} {
		_, err := svc.ExportPath(nom)
		require.ErrorIs(t, err, ErrNomFitxerInvalid, "nom %q", nom)
	}
}

func TestExportPathMissingFile(t *testing.T) {
	db := setupDB(t)
	svc := newMossosService(t, db)

	_, err := svc.ExportPath("0000000123.209901010000.txt")
	require.ErrorIs(t, err, ErrFitxerNotFound)
}
