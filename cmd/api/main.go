package main

import (
	"log"

	_ "hotel_reservas/docs"
	"hotel_reservas/internal/adapter/http/routes"
	"hotel_reservas/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Hotel Reservas API
// @version         1.0
// @description     Gestão de quartos, hóspedes e reservas de hotel.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := routes.Run(config.Load()); err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}
}
