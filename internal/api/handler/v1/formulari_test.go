package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/allotjaments/viatgers-api/internal/domain"
	"github.com/allotjaments/viatgers-api/internal/repository"
	"github.com/allotjaments/viatgers-api/internal/repository/dao"
	"github.com/allotjaments/viatgers-api/internal/service"
)

func setupFormulariRouter(t *testing.T) (*gin.Engine, *service.FormulariService, domain.Reserva) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(db))

	reservaRepo := repository.NewReservaRepository(dao.NewReservaDAO(db))
	reserva, err := reservaRepo.Create(context.Background(), domain.Reserva{
		Client:       "Maria Puig",
		Allotjament:  "Cal Martí",
		DataEntrada:  time.Date(2024, 8, 14, 0, 0, 0, 0, time.UTC),
		DataSortida:  time.Date(2024, 8, 18, 0, 0, 0, 0, time.UTC),
		NombreHostes: 2,
	})
	require.NoError(t, err)

	svc := service.NewFormulariService(
		repository.NewFormulariRepository(dao.NewFormulariDAO(db)),
		repository.NewViatgerRepository(dao.NewViatgerDAO(db)),
		reservaRepo,
		"http://localhost:4000",
	)
	handler := NewFormulariHandler(svc)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	// Both the canonical path and the legacy alias serve the same handlers.
	router.GET("/formulari/:token", handler.HandleFitxaPublica)
	router.POST("/formulari/:token", handler.HandleRegistrePublic)
	router.GET("/formulari-viatger/:token", handler.HandleFitxaPublica)
	router.POST("/formulari-viatger/:token", handler.HandleRegistrePublic)
	router.POST("/viatgers/generar-formulari-reserva", handler.HandleGenerarFormulari)
	router.DELETE("/viatgers/eliminar-formulari-reserva", handler.HandleEliminarFormulari)
	router.GET("/formularis-reserva/:reservaID", handler.HandleGetFormulariReserva)

	return router, svc, reserva
}

func registrePayload(t *testing.T) []byte {
	t.Helper()

	body, err := json.Marshal(gin.H{
		"viatgers": []gin.H{{
			"nom":                    "Núria",
			"cognoms":                "Bosch",
			"dni_passaport":          "12345678Z",
			"tipus_document":         "dni",
			"data_naixement":         "1990-05-02",
			"nacionalitat":           "ESP",
			"sexe":                   "dona",
			"adresa_residencia":      "Carrer Major 1",
			"ciutat_residencia":      "Figueres",
			"provincia_residencia":   "Girona",
			"codi_postal_residencia": "17600",
			"pais_residencia":        "Espanya",
		}},
	})
	require.NoError(t, err)

	return body
}

func TestHandleFitxaPublica(t *testing.T) {
	router, svc, reserva := setupFormulariRouter(t)

	enllac, err := svc.GenerateForReserva(context.Background(), reserva.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/formulari/"+enllac.Formulari.Token, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var fitxa domain.FitxaFormulari
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fitxa))
	assert.Equal(t, reserva.ID, fitxa.Reserva.ID)
	assert.Len(t, fitxa.Viatgers, 2)
	assert.Equal(t, 2, fitxa.Pendents)
}

func TestHandleFitxaPublicaUnknownToken(t *testing.T) {
	router, _, _ := setupFormulariRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/formulari/no-such-token", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleFitxaPublicaLegacyAlias(t *testing.T) {
	router, svc, reserva := setupFormulariRouter(t)

	enllac, err := svc.GenerateForReserva(context.Background(), reserva.ID)
	require.NoError(t, err)

	for _, path := range []string{"/formulari/", "/formulari-viatger/"} {
		req := httptest.NewRequest(http.MethodGet, path+enllac.Formulari.Token, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, "path %v", path)
	}
}

func TestHandleRegistrePublic(t *testing.T) {
	router, svc, reserva := setupFormulariRouter(t)

	enllac, err := svc.GenerateForReserva(context.Background(), reserva.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/formulari-viatger/"+enllac.Formulari.Token, bytes.NewReader(registrePayload(t)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Viatger          domain.Viatger `json:"viatger"`
		PendentsRestants int            `json:"pendents_restants"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Núria", resp.Viatger.Nom)
	assert.Equal(t, domain.EstatOmplert, resp.Viatger.Estat)
	assert.Equal(t, 1, resp.PendentsRestants)
}

func TestHandleRegistrePublicMissingFields(t *testing.T) {
	router, svc, reserva := setupFormulariRouter(t)

	enllac, err := svc.GenerateForReserva(context.Background(), reserva.ID)
	require.NoError(t, err)

	body, err := json.Marshal(gin.H{
		"viatgers": []gin.H{{"nom": "Núria"}},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/formulari/"+enllac.Formulari.Token, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRegistrePublicAllFilled(t *testing.T) {
	router, svc, reserva := setupFormulariRouter(t)

	enllac, err := svc.GenerateForReserva(context.Background(), reserva.ID)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/formulari/"+enllac.Formulari.Token, bytes.NewReader(registrePayload(t)))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/formulari/"+enllac.Formulari.Token, bytes.NewReader(registrePayload(t)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleGenerarFormulari(t *testing.T) {
	router, _, reserva := setupFormulariRouter(t)

	body, err := json.Marshal(gin.H{"reserva_id": reserva.ID})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/viatgers/generar-formulari-reserva", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var enllac domain.EnllacFormulari
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &enllac))
	assert.NotEmpty(t, enllac.Formulari.Token)
	assert.Len(t, enllac.Viatgers, 2)
	assert.Contains(t, enllac.Enllac, enllac.Formulari.Token)

	// Second generation for the same reservation conflicts.
	req = httptest.NewRequest(http.MethodPost, "/viatgers/generar-formulari-reserva", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleGenerarFormulariUnknownReserva(t *testing.T) {
	router, _, _ := setupFormulariRouter(t)

	body, err := json.Marshal(gin.H{"reserva_id": 999})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/viatgers/generar-formulari-reserva", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleEliminarFormulari(t *testing.T) {
	router, svc, reserva := setupFormulariRouter(t)

	enllac, err := svc.GenerateForReserva(context.Background(), reserva.ID)
	require.NoError(t, err)

	body, err := json.Marshal(gin.H{"reserva_id": reserva.ID})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/viatgers/eliminar-formulari-reserva", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	// The link is gone afterwards.
	req = httptest.NewRequest(http.MethodGet, "/formulari/"+enllac.Formulari.Token, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetFormulariReserva(t *testing.T) {
	router, svc, reserva := setupFormulariRouter(t)

	enllac, err := svc.GenerateForReserva(context.Background(), reserva.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/formularis-reserva/%v", reserva.ID), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.EnllacFormulari
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, enllac.Formulari.Token, got.Formulari.Token)
}
