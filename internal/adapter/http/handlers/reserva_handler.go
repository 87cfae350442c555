package handlers

import (
	"context"
	"net/http"

	request "hotel_reservas/internal/adapter/http/dto/request"
	response "hotel_reservas/internal/adapter/http/dto/response"
	"hotel_reservas/internal/domain/entities"
	"hotel_reservas/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReservaHandler struct {
	usecase usecase.IReservaUseCase
}

func NewReservaHandler(uc usecase.IReservaUseCase) *ReservaHandler {
	return &ReservaHandler{usecase: uc}
}

// CriarReserva godoc
// @Summary      Cria uma reserva e ocupa o quarto
// @Tags         reservas
// @Accept       json
// @Produce      json
// @Param        reserva  body      request.CriarReservaRequest  true  "Reserva (datas YYYY-MM-DD ou RFC3339)"
// @Success      201      {object}  response.ReservaResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /reservas [post]
func (h *ReservaHandler) CriarReserva(c *gin.Context) {
	var payload request.CriarReservaRequest
	if !bindJSON(c, &payload) {
		return
	}

	r, err := h.usecase.CriarReserva(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromReserva(r))
}

// ListarReservas godoc
// @Summary      Lista reservas
// @Tags         reservas
// @Produce      json
// @Success      200  {array}  response.ReservaResponse
// @Router       /reservas [get]
func (h *ReservaHandler) ListarReservas(c *gin.Context) {
	h.listar(c, h.usecase.ListarReservas)
}

// ListarAtivas godoc
// @Summary      Lista reservas confirmadas ou em andamento
// @Tags         reservas
// @Produce      json
// @Success      200  {array}  response.ReservaResponse
// @Router       /reservas/ativas [get]
func (h *ReservaHandler) ListarAtivas(c *gin.Context) {
	h.listar(c, h.usecase.ListarAtivas)
}

func (h *ReservaHandler) listar(c *gin.Context, lister func(ctx context.Context) ([]entities.ReservaData, error)) {
	reservas, err := lister(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromReservas(reservas))
}

// BuscarReserva godoc
// @Summary      Busca uma reserva
// @Tags         reservas
// @Produce      json
// @Param        id   path      string  true  "ID da reserva"
// @Success      200  {object}  response.ReservaResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /reservas/{id} [get]
func (h *ReservaHandler) BuscarReserva(c *gin.Context) {
	h.porID(c, http.StatusOK, h.usecase.BuscarReserva)
}

// AtualizarReserva godoc
// @Summary      Altera datas e/ou status de uma reserva
// @Tags         reservas
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true  "ID da reserva"
// @Param        reserva  body      request.AtualizarReservaRequest  true  "Campos a alterar"
// @Success      200      {object}  response.ReservaResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /reservas/{id} [put]
func (h *ReservaHandler) AtualizarReserva(c *gin.Context) {
	var payload request.AtualizarReservaRequest
	if !bindJSON(c, &payload) {
		return
	}

	r, err := h.usecase.AtualizarReserva(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromReserva(r))
}

// ConfirmarReserva godoc
// @Summary      Confirma uma reserva pendente
// @Tags         reservas
// @Produce      json
// @Param        id   path      string  true  "ID da reserva"
// @Success      200  {object}  response.ReservaResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /reservas/{id}/confirmar [patch]
func (h *ReservaHandler) ConfirmarReserva(c *gin.Context) {
	h.porID(c, http.StatusOK, h.usecase.ConfirmarReserva)
}

// RealizarCheckIn godoc
// @Summary      Check-in de uma reserva confirmada
// @Tags         reservas
// @Produce      json
// @Param        id   path      string  true  "ID da reserva"
// @Success      200  {object}  response.ReservaResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /reservas/{id}/checkin [patch]
func (h *ReservaHandler) RealizarCheckIn(c *gin.Context) {
	h.porID(c, http.StatusOK, h.usecase.RealizarCheckIn)
}

// RealizarCheckOut godoc
// @Summary      Check-out de uma reserva em andamento; libera o quarto
// @Tags         reservas
// @Produce      json
// @Param        id   path      string  true  "ID da reserva"
// @Success      200  {object}  response.ReservaResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /reservas/{id}/checkout [patch]
func (h *ReservaHandler) RealizarCheckOut(c *gin.Context) {
	h.porID(c, http.StatusOK, h.usecase.RealizarCheckOut)
}

// CancelarReserva godoc
// @Summary      Cancela uma reserva pendente ou confirmada; libera o quarto
// @Tags         reservas
// @Produce      json
// @Param        id   path      string  true  "ID da reserva"
// @Success      200  {object}  response.ReservaResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /reservas/{id}/cancelar [patch]
func (h *ReservaHandler) CancelarReserva(c *gin.Context) {
	h.porID(c, http.StatusOK, h.usecase.CancelarReserva)
}

func (h *ReservaHandler) porID(
	c *gin.Context,
	status int,
	action func(ctx context.Context, id string) (entities.ReservaData, error),
) {
	r, err := action(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(status, response.FromReserva(r))
}

// DeletarReserva godoc
// @Summary      Remove uma reserva finalizada ou cancelada
// @Tags         reservas
// @Param        id  path  string  true  "ID da reserva"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /reservas/{id} [delete]
func (h *ReservaHandler) DeletarReserva(c *gin.Context) {
	if err := h.usecase.DeletarReserva(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
