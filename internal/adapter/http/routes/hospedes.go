package routes

import (
	"hotel_reservas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathHospedes = "/hospedes"

func addHospedeRoutes(rg *gin.RouterGroup, h *handlers.HospedeHandler) {
	hospedes := rg.Group(PathHospedes)
	{
		hospedes.POST("", h.CriarHospede)
		hospedes.GET("", h.ListarHospedes)
		hospedes.GET("/cpf/:cpf", h.BuscarPorCPF)
		hospedes.GET("/:id", h.BuscarHospede)
		hospedes.PUT("/:id", h.AtualizarHospede)
		hospedes.DELETE("/:id", h.DeletarHospede)
		hospedes.GET("/:id/reservas", h.ListarReservas)
	}
}
