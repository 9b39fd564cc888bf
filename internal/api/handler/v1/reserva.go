package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/allotjaments/viatgers-api/internal/api/handler/v1/request"
	"github.com/allotjaments/viatgers-api/internal/api/handler/v1/response"
	"github.com/allotjaments/viatgers-api/internal/domain"
	"github.com/allotjaments/viatgers-api/internal/service"
)

type ReservaService interface {
	Create(ctx context.Context, reserva domain.Reserva) (domain.Reserva, error)
	GetReserva(ctx context.Context, id uint) (domain.Reserva, error)
	Update(ctx context.Context, reserva domain.Reserva) (domain.Reserva, error)
}

type ReservaHandler struct {
	svc ReservaService
}

func NewReservaHandler(svc ReservaService) *ReservaHandler {
	return &ReservaHandler{
		svc: svc,
	}
}

// HandleCreateReserva godoc
// @Summary      Create a reservation
// @Tags         reserves
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreaReservaRequest  true  "Reservation data"
// @Success      201    {object}  domain.Reserva
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /reserves [post]
// @Security     BearerAuth
func (h *ReservaHandler) HandleCreateReserva(ctx *gin.Context) {
	var req request.CreaReservaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	reserva, err := reservaFromDates(req.Client, req.Allotjament, req.DataEntrada, req.DataSortida, req.NombreHostes)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.Create(ctx.Request.Context(), reserva)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateReserva -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleGetReserva godoc
// @Summary      Get a reservation
// @Tags         reserves
// @Produce      json
// @Param        reservaID  path      int  true  "Reservation ID"
// @Success      200        {object}  domain.Reserva
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /reserves/{reservaID} [get]
// @Security     BearerAuth
func (h *ReservaHandler) HandleGetReserva(ctx *gin.Context) {
	reservaID, err := strconv.ParseUint(ctx.Param("reservaID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid reserva ID: %w", err)))
		return
	}

	reserva, err := h.svc.GetReserva(ctx.Request.Context(), uint(reservaID))
	if err != nil {
		if errors.Is(err, service.ErrReservaNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("reserva", "id", reservaID))
			return
		}

		err = fmt.Errorf("v1.HandleGetReserva -> h.svc.GetReserva -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, reserva)
}

// HandleUpdateReserva godoc
// @Summary      Update a reservation
// @Tags         reserves
// @Accept       json
// @Produce      json
// @Param        reservaID  path      int                               true  "Reservation ID"
// @Param        input      body      request.ActualitzaReservaRequest  true  "Reservation data"
// @Success      200        {object}  domain.Reserva
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /reserves/{reservaID} [put]
// @Security     BearerAuth
func (h *ReservaHandler) HandleUpdateReserva(ctx *gin.Context) {
	reservaID, err := strconv.ParseUint(ctx.Param("reservaID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid reserva ID: %w", err)))
		return
	}

	var req request.ActualitzaReservaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	reserva, err := reservaFromDates(req.Client, req.Allotjament, req.DataEntrada, req.DataSortida, req.NombreHostes)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	reserva.ID = uint(reservaID)

	updated, err := h.svc.Update(ctx.Request.Context(), reserva)
	if err != nil {
		if errors.Is(err, service.ErrReservaNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("reserva", "id", reservaID))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateReserva -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

func reservaFromDates(client, allotjament, dataEntrada, dataSortida string, nombreHostes int) (domain.Reserva, error) {
	entrada, err := time.Parse("2006-01-02", dataEntrada)
	if err != nil {
		return domain.Reserva{}, fmt.Errorf("invalid data_entrada: %w", err)
	}

	sortida, err := time.Parse("2006-01-02", dataSortida)
	if err != nil {
		return domain.Reserva{}, fmt.Errorf("invalid data_sortida: %w", err)
	}

	if sortida.Before(entrada) {
		return domain.Reserva{}, errors.New("data_sortida cannot be before data_entrada")
	}

	return domain.Reserva{
		Client:       client,
		Allotjament:  allotjament,
		DataEntrada:  entrada,
		DataSortida:  sortida,
		NombreHostes: nombreHostes,
	}, nil
}
