package routes

import (
	"hotel_reservas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathReservas = "/reservas"

func addReservaRoutes(rg *gin.RouterGroup, h *handlers.ReservaHandler) {
	reservas := rg.Group(PathReservas)
	{
		reservas.POST("", h.CriarReserva)
		reservas.GET("", h.ListarReservas)
		reservas.GET("/ativas", h.ListarAtivas)
		reservas.GET("/:id", h.BuscarReserva)
		reservas.PUT("/:id", h.AtualizarReserva)
		reservas.PATCH("/:id/confirmar", h.ConfirmarReserva)
		reservas.PATCH("/:id/checkin", h.RealizarCheckIn)
		reservas.PATCH("/:id/checkout", h.RealizarCheckOut)
		reservas.PATCH("/:id/cancelar", h.CancelarReserva)
		reservas.DELETE("/:id", h.DeletarReserva)
	}
}
