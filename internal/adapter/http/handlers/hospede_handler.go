package handlers

import (
	"net/http"

	request "hotel_reservas/internal/adapter/http/dto/request"
	response "hotel_reservas/internal/adapter/http/dto/response"
	"hotel_reservas/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HospedeHandler struct {
	usecase  usecase.IHospedeUseCase
	reservas usecase.IReservaUseCase
}

func NewHospedeHandler(uc usecase.IHospedeUseCase, reservas usecase.IReservaUseCase) *HospedeHandler {
	return &HospedeHandler{usecase: uc, reservas: reservas}
}

// CriarHospede godoc
// @Summary      Cadastra um hóspede
// @Tags         hospedes
// @Accept       json
// @Produce      json
// @Param        hospede  body      request.CriarHospedeRequest  true  "Hóspede"
// @Success      201      {object}  response.HospedeResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /hospedes [post]
func (h *HospedeHandler) CriarHospede(c *gin.Context) {
	var payload request.CriarHospedeRequest
	if !bindJSON(c, &payload) {
		return
	}

	hospede, err := h.usecase.CriarHospede(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromHospede(hospede))
}

// ListarHospedes godoc
// @Summary      Lista hóspedes
// @Tags         hospedes
// @Produce      json
// @Success      200  {array}  response.HospedeResponse
// @Router       /hospedes [get]
func (h *HospedeHandler) ListarHospedes(c *gin.Context) {
	hospedes, err := h.usecase.ListarHospedes(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromHospedes(hospedes))
}

// BuscarHospede godoc
// @Summary      Busca um hóspede
// @Tags         hospedes
// @Produce      json
// @Param        id   path      string  true  "ID do hóspede"
// @Success      200  {object}  response.HospedeResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /hospedes/{id} [get]
func (h *HospedeHandler) BuscarHospede(c *gin.Context) {
	hospede, err := h.usecase.BuscarHospede(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromHospede(hospede))
}

// BuscarPorCPF godoc
// @Summary      Busca um hóspede pelo CPF, com ou sem pontuação
// @Tags         hospedes
// @Produce      json
// @Param        cpf  path      string  true  "CPF"
// @Success      200  {object}  response.HospedeResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /hospedes/cpf/{cpf} [get]
func (h *HospedeHandler) BuscarPorCPF(c *gin.Context) {
	hospede, err := h.usecase.BuscarPorCPF(c.Request.Context(), c.Param("cpf"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromHospede(hospede))
}

// AtualizarHospede godoc
// @Summary      Atualiza nome, sobrenome ou e-mail de um hóspede
// @Tags         hospedes
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true  "ID do hóspede"
// @Param        hospede  body      request.AtualizarHospedeRequest  true  "Campos a alterar"
// @Success      200      {object}  response.HospedeResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /hospedes/{id} [put]
func (h *HospedeHandler) AtualizarHospede(c *gin.Context) {
	var payload request.AtualizarHospedeRequest
	if !bindJSON(c, &payload) {
		return
	}

	hospede, err := h.usecase.AtualizarHospede(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromHospede(hospede))
}

// DeletarHospede godoc
// @Summary      Remove um hóspede sem reservas em aberto
// @Tags         hospedes
// @Param        id  path  string  true  "ID do hóspede"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /hospedes/{id} [delete]
func (h *HospedeHandler) DeletarHospede(c *gin.Context) {
	if err := h.usecase.DeletarHospede(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListarReservas godoc
// @Summary      Lista as reservas de um hóspede
// @Tags         hospedes
// @Produce      json
// @Param        id   path      string  true  "ID do hóspede"
// @Success      200  {array}   response.ReservaResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /hospedes/{id}/reservas [get]
func (h *HospedeHandler) ListarReservas(c *gin.Context) {
	reservas, err := h.reservas.ListarPorHospede(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromReservas(reservas))
}
