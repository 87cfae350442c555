package handlers

import (
	"net/http"

	request "hotel_reservas/internal/adapter/http/dto/request"
	response "hotel_reservas/internal/adapter/http/dto/response"
	"hotel_reservas/internal/domain/entities"
	"hotel_reservas/internal/usecase"

	"github.com/gin-gonic/gin"
)

type QuartoHandler struct {
	usecase  usecase.IQuartoUseCase
	reservas usecase.IReservaUseCase
}

func NewQuartoHandler(uc usecase.IQuartoUseCase, reservas usecase.IReservaUseCase) *QuartoHandler {
	return &QuartoHandler{usecase: uc, reservas: reservas}
}

// CriarQuarto godoc
// @Summary      Cria um quarto
// @Tags         quartos
// @Accept       json
// @Produce      json
// @Param        quarto  body      request.CriarQuartoRequest  true  "Quarto"
// @Success      201     {object}  response.QuartoResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      409     {object}  pkg.HTTPError
// @Router       /quartos [post]
func (h *QuartoHandler) CriarQuarto(c *gin.Context) {
	var payload request.CriarQuartoRequest
	if !bindJSON(c, &payload) {
		return
	}

	q, err := h.usecase.CriarQuarto(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromQuarto(q))
}

// ListarQuartos godoc
// @Summary      Lista quartos, opcionalmente filtrando pela disponibilidade
// @Tags         quartos
// @Produce      json
// @Param        disponibilidade  query     string  false  "LIVRE, OCUPADO, MANUTENCAO ou LIMPEZA"
// @Success      200              {array}   response.QuartoResponse
// @Failure      400              {object}  pkg.HTTPError
// @Router       /quartos [get]
func (h *QuartoHandler) ListarQuartos(c *gin.Context) {
	var (
		quartos []entities.QuartoData
		err     error
	)
	if d := c.Query("disponibilidade"); d != "" {
		quartos, err = h.usecase.ListarPorDisponibilidade(c.Request.Context(), entities.Disponibilidade(d))
	} else {
		quartos, err = h.usecase.ListarQuartos(c.Request.Context())
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuartos(quartos))
}

// ListarDisponiveis godoc
// @Summary      Lista os quartos livres
// @Tags         quartos
// @Produce      json
// @Success      200  {array}  response.QuartoResponse
// @Router       /quartos/disponiveis [get]
func (h *QuartoHandler) ListarDisponiveis(c *gin.Context) {
	quartos, err := h.usecase.ListarPorDisponibilidade(c.Request.Context(), entities.DisponibilidadeLivre)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuartos(quartos))
}

// BuscarQuarto godoc
// @Summary      Busca um quarto
// @Tags         quartos
// @Produce      json
// @Param        id   path      string  true  "ID do quarto"
// @Success      200  {object}  response.QuartoResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quartos/{id} [get]
func (h *QuartoHandler) BuscarQuarto(c *gin.Context) {
	q, err := h.usecase.BuscarQuarto(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuarto(q))
}

// AtualizarQuarto godoc
// @Summary      Atualiza um quarto
// @Tags         quartos
// @Accept       json
// @Produce      json
// @Param        id      path      string                          true  "ID do quarto"
// @Param        quarto  body      request.AtualizarQuartoRequest  true  "Campos a alterar"
// @Success      200     {object}  response.QuartoResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Failure      409     {object}  pkg.HTTPError
// @Router       /quartos/{id} [put]
func (h *QuartoHandler) AtualizarQuarto(c *gin.Context) {
	var payload request.AtualizarQuartoRequest
	if !bindJSON(c, &payload) {
		return
	}

	q, err := h.usecase.AtualizarQuarto(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuarto(q))
}

// AlterarDisponibilidade godoc
// @Summary      Altera a disponibilidade de um quarto
// @Tags         quartos
// @Accept       json
// @Produce      json
// @Param        id               path      string                                 true  "ID do quarto"
// @Param        disponibilidade  body      request.AlterarDisponibilidadeRequest  true  "Nova disponibilidade"
// @Success      200              {object}  response.QuartoResponse
// @Failure      400              {object}  pkg.HTTPError
// @Failure      404              {object}  pkg.HTTPError
// @Router       /quartos/{id}/disponibilidade [patch]
func (h *QuartoHandler) AlterarDisponibilidade(c *gin.Context) {
	var payload request.AlterarDisponibilidadeRequest
	if !bindJSON(c, &payload) {
		return
	}

	q, err := h.usecase.AlterarDisponibilidade(c.Request.Context(), c.Param("id"), entities.Disponibilidade(payload.Disponibilidade))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuarto(q))
}

// AdicionarCama godoc
// @Summary      Adiciona uma cama ao quarto
// @Tags         quartos
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "ID do quarto"
// @Param        cama  body      request.AdicionarCamaRequest  true  "Cama"
// @Success      201   {object}  response.QuartoResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /quartos/{id}/camas [post]
func (h *QuartoHandler) AdicionarCama(c *gin.Context) {
	var payload request.AdicionarCamaRequest
	if !bindJSON(c, &payload) {
		return
	}

	q, err := h.usecase.AdicionarCama(c.Request.Context(), c.Param("id"), entities.TipoCama(payload.Tipo))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromQuarto(q))
}

// RemoverCama godoc
// @Summary      Remove uma cama do quarto
// @Tags         quartos
// @Produce      json
// @Param        id       path      string  true  "ID do quarto"
// @Param        cama_id  path      string  true  "ID da cama"
// @Success      200      {object}  response.QuartoResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /quartos/{id}/camas/{cama_id} [delete]
func (h *QuartoHandler) RemoverCama(c *gin.Context) {
	q, err := h.usecase.RemoverCama(c.Request.Context(), c.Param("id"), c.Param("cama_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuarto(q))
}

// DeletarQuarto godoc
// @Summary      Remove um quarto sem reservas em aberto
// @Tags         quartos
// @Param        id  path  string  true  "ID do quarto"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quartos/{id} [delete]
func (h *QuartoHandler) DeletarQuarto(c *gin.Context) {
	if err := h.usecase.DeletarQuarto(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListarReservas godoc
// @Summary      Lista as reservas de um quarto
// @Tags         quartos
// @Produce      json
// @Param        id   path      string  true  "ID do quarto"
// @Success      200  {array}   response.ReservaResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quartos/{id}/reservas [get]
func (h *QuartoHandler) ListarReservas(c *gin.Context) {
	reservas, err := h.reservas.ListarPorQuarto(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromReservas(reservas))
}
