package routes

import (
	"hotel_reservas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathQuartos = "/quartos"

func addQuartoRoutes(rg *gin.RouterGroup, h *handlers.QuartoHandler) {
	quartos := rg.Group(PathQuartos)
	{
		quartos.POST("", h.CriarQuarto)
		quartos.GET("", h.ListarQuartos)
		quartos.GET("/disponiveis", h.ListarDisponiveis)
		quartos.GET("/:id", h.BuscarQuarto)
		quartos.PUT("/:id", h.AtualizarQuarto)
		quartos.PATCH("/:id/disponibilidade", h.AlterarDisponibilidade)
		quartos.DELETE("/:id", h.DeletarQuarto)
		quartos.POST("/:id/camas", h.AdicionarCama)
		quartos.DELETE("/:id/camas/:cama_id", h.RemoverCama)
		quartos.GET("/:id/reservas", h.ListarReservas)
	}
}
