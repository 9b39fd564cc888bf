package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/allotjaments/viatgers-api/internal/api/handler/v1/request"
	"github.com/allotjaments/viatgers-api/internal/api/handler/v1/response"
	"github.com/allotjaments/viatgers-api/internal/domain"
	"github.com/allotjaments/viatgers-api/internal/service"
)

type ViatgerService interface {
	List(ctx context.Context, filtre domain.FiltreViatgers) ([]domain.Viatger, error)
	Create(ctx context.Context, viatger domain.Viatger) (domain.Viatger, error)
	Update(ctx context.Context, id uint, viatger domain.Viatger) (domain.ActualitzacioViatger, error)
	Delete(ctx context.Context, id uint) error
	Estadistiques(ctx context.Context, reservaID uint) (domain.EstadistiquesViatgers, error)
}

type ViatgerHandler struct {
	svc ViatgerService
}

func NewViatgerHandler(svc ViatgerService) *ViatgerHandler {
	return &ViatgerHandler{
		svc: svc,
	}
}

// HandleListViatgers godoc
// @Summary      List travellers
// @Description  Optional filters: free-text search over nom/cognoms/document, estat and reserva_id. Callers filter client-side from a full pull; there is no pagination.
// @Tags         viatgers
// @Produce      json
// @Param        cerca       query     string  false  "Free-text search"
// @Param        estat       query     string  false  "pendent | omplert | enviat"
// @Param        reserva_id  query     int     false  "Reservation ID"
// @Success      200         {array}   domain.Viatger
// @Failure      400         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /viatgers [get]
// @Security     BearerAuth
func (h *ViatgerHandler) HandleListViatgers(ctx *gin.Context) {
	filtre := domain.FiltreViatgers{
		Cerca: ctx.Query("cerca"),
		Estat: domain.EstatFormulari(ctx.Query("estat")),
	}

	if raw := ctx.Query("reserva_id"); raw != "" {
		reservaID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid reserva_id: %w", err)))
			return
		}
		filtre.ReservaID = uint(reservaID)
	}

	viatgers, err := h.svc.List(ctx.Request.Context(), filtre)
	if err != nil {
		err = fmt.Errorf("v1.HandleListViatgers -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, viatgers)
}

// HandleCreateViatger godoc
// @Summary      Create a traveller
// @Tags         viatgers
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreaViatgerRequest  true  "Traveller data"
// @Success      201    {object}  domain.Viatger
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /viatgers [post]
// @Security     BearerAuth
func (h *ViatgerHandler) HandleCreateViatger(ctx *gin.Context) {
	var req request.CreaViatgerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	viatger := req.ToDomain()
	viatger.ReservaID = req.ReservaID

	created, err := h.svc.Create(ctx.Request.Context(), viatger)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateViatger -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateViatger godoc
// @Summary      Update a traveller
// @Description  Saves the traveller and, when numero_viatgers changed, syncs the reservation's guest count as a second phase. The response reports the cascade outcome separately; a cascade failure never rolls back the traveller save.
// @Tags         viatgers
// @Accept       json
// @Produce      json
// @Param        viatgerID  path      int                               true  "Traveller ID"
// @Param        input      body      request.ActualitzaViatgerRequest  true  "Traveller data"
// @Success      200        {object}  domain.ActualitzacioViatger
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /viatgers/{viatgerID} [put]
// @Security     BearerAuth
func (h *ViatgerHandler) HandleUpdateViatger(ctx *gin.Context) {
	viatgerID, err := strconv.ParseUint(ctx.Param("viatgerID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid viatger ID: %w", err)))
		return
	}

	var req request.ActualitzaViatgerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.svc.Update(ctx.Request.Context(), uint(viatgerID), req.ToDomain())
	if err != nil {
		if errors.Is(err, service.ErrViatgerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("viatger", "id", viatgerID))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateViatger -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleDeleteViatger godoc
// @Summary      Delete a traveller
// @Tags         viatgers
// @Produce      json
// @Param        viatgerID  path      int  true  "Traveller ID"
// @Success      200        {object}  response.Missatge
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /viatgers/{viatgerID} [delete]
// @Security     BearerAuth
func (h *ViatgerHandler) HandleDeleteViatger(ctx *gin.Context) {
	viatgerID, err := strconv.ParseUint(ctx.Param("viatgerID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid viatger ID: %w", err)))
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), uint(viatgerID)); err != nil {
		if errors.Is(err, service.ErrViatgerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("viatger", "id", viatgerID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteViatger -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Missatge{Missatge: "viatger eliminat"})
}

// HandleEstadistiques godoc
// @Summary      Traveller statistics
// @Tags         viatgers
// @Produce      json
// @Param        reserva_id  query     int  false  "Scope to one reservation"
// @Success      200         {object}  domain.EstadistiquesViatgers
// @Failure      400         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /viatgers/estadistiques [get]
// @Security     BearerAuth
func (h *ViatgerHandler) HandleEstadistiques(ctx *gin.Context) {
	var reservaID uint
	if raw := ctx.Query("reserva_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid reserva_id: %w", err)))
			return
		}
		reservaID = uint(parsed)
	}

	stats, err := h.svc.Estadistiques(ctx.Request.Context(), reservaID)
	if err != nil {
		err = fmt.Errorf("v1.HandleEstadistiques -> h.svc.Estadistiques -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
