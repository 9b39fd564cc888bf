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

type FormulariService interface {
	GenerateForReserva(ctx context.Context, reservaID uint) (domain.EnllacFormulari, error)
	GetByReserva(ctx context.Context, reservaID uint) (domain.EnllacFormulari, error)
	DeleteForReserva(ctx context.Context, reservaID uint) error
	FitxaPublica(ctx context.Context, token string) (domain.FitxaFormulari, error)
	RegistraViatger(ctx context.Context, token string, viatgerID uint, dades domain.Viatger) (domain.Viatger, int, error)
}

type FormulariHandler struct {
	svc FormulariService
}

func NewFormulariHandler(svc FormulariService) *FormulariHandler {
	return &FormulariHandler{
		svc: svc,
	}
}

// HandleFitxaPublica godoc
// @Summary      Get the public registration form for a token
// @Description  Resolves the reservation, its traveller slots and the pending count for the shared link. No authentication: the token is the authorization.
// @Tags         formulari
// @Produce      json
// @Param        token  path      string  true  "Registration token"
// @Success      200    {object}  domain.FitxaFormulari
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /formulari/{token} [get]
func (h *FormulariHandler) HandleFitxaPublica(ctx *gin.Context) {
	token := ctx.Param("token")

	fitxa, err := h.svc.FitxaPublica(ctx.Request.Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrFormulariNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("formulari", "token", token))
			return
		}

		err = fmt.Errorf("v1.HandleFitxaPublica -> h.svc.FitxaPublica -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, fitxa)
}

// HandleRegistrePublic godoc
// @Summary      Register one traveller through the shared public form
// @Description  Claims one pendent slot atomically. A submission racing against another traveller for the same slot is rejected with a conflict.
// @Tags         formulari
// @Accept       json
// @Produce      json
// @Param        token  path      string                          true  "Registration token"
// @Param        input  body      request.RegistreViatgerRequest  true  "Traveller data"
// @Success      201    {object}  response.RegistreViatger
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /formulari/{token} [post]
func (h *FormulariHandler) HandleRegistrePublic(ctx *gin.Context) {
	token := ctx.Param("token")

	var req request.RegistreViatgerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	submissio := req.Viatgers[0]

	viatger, pendents, err := h.svc.RegistraViatger(ctx.Request.Context(), token, submissio.ID, submissio.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFormulariNotFound):
			response.RenderErr(ctx, response.ErrNotFound("formulari", "token", token))
		case errors.Is(err, service.ErrTotsElsViatgersRegistrats):
			response.RenderErr(ctx, response.ErrConflict(service.ErrTotsElsViatgersRegistrats))
		case errors.Is(err, service.ErrPlacaJaOmplerta):
			response.RenderErr(ctx, response.ErrConflict(service.ErrPlacaJaOmplerta))
		default:
			err = fmt.Errorf("v1.HandleRegistrePublic -> h.svc.RegistraViatger -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, response.RegistreViatger{
		Viatger:          viatger,
		PendentsRestants: pendents,
	})
}

// HandleGenerarFormulari godoc
// @Summary      Generate the registration link for a reservation
// @Description  Creates the link record plus one pendent traveller slot per guest. A reservation can only hold one live link.
// @Tags         formulari
// @Accept       json
// @Produce      json
// @Param        input  body      request.GenerarFormulariRequest  true  "Reservation"
// @Success      201    {object}  domain.EnllacFormulari
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /viatgers/generar-formulari-reserva [post]
// @Security     BearerAuth
func (h *FormulariHandler) HandleGenerarFormulari(ctx *gin.Context) {
	var req request.GenerarFormulariRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	enllac, err := h.svc.GenerateForReserva(ctx.Request.Context(), req.ReservaID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReservaNotFound):
			response.RenderErr(ctx, response.ErrNotFound("reserva", "id", req.ReservaID))
		case errors.Is(err, service.ErrFormulariJaGenerat):
			response.RenderErr(ctx, response.ErrConflict(service.ErrFormulariJaGenerat))
		default:
			err = fmt.Errorf("v1.HandleGenerarFormulari -> h.svc.GenerateForReserva -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, enllac)
}

// HandleEliminarFormulari godoc
// @Summary      Delete the registration link of a reservation
// @Description  Cascade-deletes the link and every traveller of the reservation.
// @Tags         formulari
// @Accept       json
// @Produce      json
// @Param        input  body      request.EliminarFormulariRequest  true  "Reservation"
// @Success      200    {object}  response.Missatge
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /viatgers/eliminar-formulari-reserva [delete]
// @Security     BearerAuth
func (h *FormulariHandler) HandleEliminarFormulari(ctx *gin.Context) {
	var req request.EliminarFormulariRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.DeleteForReserva(ctx.Request.Context(), req.ReservaID); err != nil {
		if errors.Is(err, service.ErrFormulariNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("formulari", "reservaID", req.ReservaID))
			return
		}

		err = fmt.Errorf("v1.HandleEliminarFormulari -> h.svc.DeleteForReserva -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Missatge{Missatge: "formulari i viatgers eliminats"})
}

// HandleGetFormulariReserva godoc
// @Summary      Get the registration link of a reservation
// @Tags         formulari
// @Produce      json
// @Param        reservaID  path      int  true  "Reservation ID"
// @Success      200        {object}  domain.EnllacFormulari
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /formularis-reserva/{reservaID} [get]
// @Security     BearerAuth
func (h *FormulariHandler) HandleGetFormulariReserva(ctx *gin.Context) {
	reservaID, err := strconv.ParseUint(ctx.Param("reservaID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid reserva ID: %w", err)))
		return
	}

	enllac, err := h.svc.GetByReserva(ctx.Request.Context(), uint(reservaID))
	if err != nil {
		if errors.Is(err, service.ErrFormulariNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("formulari", "reservaID", reservaID))
			return
		}

		err = fmt.Errorf("v1.HandleGetFormulariReserva -> h.svc.GetByReserva -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, enllac)
}
