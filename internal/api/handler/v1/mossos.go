package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allotjaments/viatgers-api/internal/api/handler/v1/request"
	"github.com/allotjaments/viatgers-api/internal/api/handler/v1/response"
	"github.com/allotjaments/viatgers-api/internal/domain"
	"github.com/allotjaments/viatgers-api/internal/service"
)

type MossosService interface {
	GenerateTXT(ctx context.Context, reservaID uint) (string, domain.EstadistiquesViatgers, error)
	ExportPath(fileName string) (string, error)
}

type MossosHandler struct {
	svc MossosService
}

func NewMossosHandler(svc MossosService) *MossosHandler {
	return &MossosHandler{
		svc: svc,
	}
}

// HandleGenerarTXT godoc
// @Summary      Generate the Mossos registry file for a reservation
// @Description  Includes every traveller with the full regulatory field set and flips them to enviat. When none qualifies the rejection carries the per-reservation breakdown so the client can explain itself.
// @Tags         mossos
// @Accept       json
// @Produce      json
// @Param        input  body      request.GenerarFormulariRequest  true  "Reservation"
// @Success      200    {object}  response.GenerarTXT
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      422    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /viatgers/generar-txt-mossos [post]
// @Security     BearerAuth
func (h *MossosHandler) HandleGenerarTXT(ctx *gin.Context) {
	var req request.GenerarFormulariRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	fileName, stats, err := h.svc.GenerateTXT(ctx.Request.Context(), req.ReservaID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReservaNotFound):
			response.RenderErr(ctx, response.ErrNotFound("reserva", "id", req.ReservaID))
		case errors.Is(err, service.ErrCapViatgerComplet):
			response.RenderErr(ctx, response.ErrSenseDadesSuficients(service.ErrCapViatgerComplet, stats))
		default:
			err = fmt.Errorf("v1.HandleGenerarTXT -> h.svc.GenerateTXT -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.GenerarTXT{FileName: fileName})
}

// HandleDownloadTXT godoc
// @Summary      Download a previously generated registry file
// @Description  Streams the artifact as an attachment so the admin SPA can turn it into a browser download without navigating away.
// @Tags         mossos
// @Produce      application/octet-stream
// @Param        fileName  path      string  true  "Artifact name returned by the generation call"
// @Success      200       {file}    file
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /viatgers/download-txt/{fileName} [get]
// @Security     BearerAuth
func (h *MossosHandler) HandleDownloadTXT(ctx *gin.Context) {
	fileName := ctx.Param("fileName")

	path, err := h.svc.ExportPath(fileName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNomFitxerInvalid):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrNomFitxerInvalid))
		case errors.Is(err, service.ErrFitxerNotFound):
			response.RenderErr(ctx, response.ErrNotFound("fitxer", "nom", fileName))
		default:
			err = fmt.Errorf("v1.HandleDownloadTXT -> h.svc.ExportPath -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.FileAttachment(path, fileName)
}
