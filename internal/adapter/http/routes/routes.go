package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "hotel_reservas/docs"
	request "hotel_reservas/internal/adapter/http/dto/request"
	"hotel_reservas/internal/adapter/http/handlers"
	"hotel_reservas/internal/adapter/persistence/memory"
	"hotel_reservas/internal/adapter/persistence/repository"
	"hotel_reservas/internal/infrastructure/config"
	"hotel_reservas/internal/infrastructure/database"
	"hotel_reservas/internal/infrastructure/messaging"
	"hotel_reservas/internal/usecase"
	"hotel_reservas/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// UseCases are the application services exposed over HTTP.
type UseCases struct {
	Quartos  usecase.IQuartoUseCase
	Hospedes usecase.IHospedeUseCase
	Reservas usecase.IReservaUseCase
}

type repositories struct {
	quartos  interfaces.IQuartoRepository
	hospedes interfaces.IHospedeRepository
	reservas interfaces.IReservaRepository
}

// Run will start the server and block until SIGINT/SIGTERM.
func Run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, err := newRepositories(ctx, cfg)
	if err != nil {
		return err
	}

	publisher, closePublisher := newPublisher(cfg)
	defer closePublisher()

	router := NewRouter(newUseCases(repos, publisher))

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: router}
	go func() {
		log.Printf("[http][server] listening port=%s backend=%s", cfg.Port, cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	}()

	<-ctx.Done()
	log.Printf("[http][server] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newUseCases wires the use cases around one shared Serializer, so every
// write in the process goes through the same critical section.
func newUseCases(repos repositories, publisher interfaces.IReservaEventPublisher) UseCases {
	serializer := usecase.NewSerializer()
	return UseCases{
		Quartos:  usecase.NewQuartoUseCase(repos.quartos, repos.reservas, serializer),
		Hospedes: usecase.NewHospedeUseCase(repos.hospedes, repos.reservas, serializer),
		Reservas: usecase.NewReservaUseCase(repos.reservas, repos.quartos, repos.hospedes, publisher, serializer),
	}
}

func NewRouter(uc UseCases) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := request.RegisterValidations(v); err != nil {
			log.Fatalf("Failed to register validations: %v", err)
		}
	}

	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, uc)
	return router
}

func getRoutes(router *gin.Engine, uc UseCases) {
	quartoHandler := handlers.NewQuartoHandler(uc.Quartos, uc.Reservas)
	hospedeHandler := handlers.NewHospedeHandler(uc.Hospedes, uc.Reservas)
	reservaHandler := handlers.NewReservaHandler(uc.Reservas)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuartoRoutes(v1, quartoHandler)
	addHospedeRoutes(v1, hospedeHandler)
	addReservaRoutes(v1, reservaHandler)
}

func newRepositories(ctx context.Context, cfg config.Config) (repositories, error) {
	if cfg.StorageBackend != config.BackendDynamoDB {
		log.Printf("[http][server] using in-memory storage")
		return memoryRepositories(), nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return repositories{}, err
	}
	if cfg.CriarTabelas {
		if err := database.EnsureTables(ctx, ddb, cfg.Tabelas); err != nil {
			return repositories{}, err
		}
	}

	t := cfg.Tabelas
	return repositories{
		quartos:  repository.NewQuartoDynamoRepository(ddb, t.Quartos, t.Unicidade),
		hospedes: repository.NewHospedeDynamoRepository(ddb, t.Hospedes, t.Unicidade),
		reservas: repository.NewReservaDynamoRepository(ddb, t.Reservas, t.Unicidade),
	}, nil
}

func memoryRepositories() repositories {
	return repositories{
		quartos:  memory.NewQuartoRepository(),
		hospedes: memory.NewHospedeRepository(),
		reservas: memory.NewReservaRepository(),
	}
}

// newPublisher falls back to logging events when RabbitMQ is not configured
// or not reachable.
func newPublisher(cfg config.Config) (interfaces.IReservaEventPublisher, func()) {
	if cfg.RabbitMQURL == "" {
		return messaging.NoopPublisher{}, func() {}
	}
	p, err := messaging.NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.RabbitMQExchange)
	if err != nil {
		log.Printf("RabbitMQ publisher not configured: %v", err)
		return messaging.NoopPublisher{}, func() {}
	}
	return p, func() {
		if err := p.Close(); err != nil {
			log.Printf("[messaging][rabbitmq] close failed err=%v", err)
		}
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
