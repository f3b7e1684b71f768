package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpctl "store-api/internal/controllers/http"
	"store-api/internal/infra/rabbitmq"
	infsqlite "store-api/internal/infra/sqlite"
	sqliterepo "store-api/internal/repository/sqlite"
	"store-api/internal/services"
)

func main() {
	devMode := os.Getenv("APP_ENV") == "development"

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if devMode {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/app.db"
	}
	db, err := infsqlite.Open(dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()

	if err := infsqlite.Init(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("initialize database")
	}

	userRepo := sqliterepo.NewUserRepository(db)
	productRepo := sqliterepo.NewProductRepository(db)
	orderRepo := sqliterepo.NewOrderRepository(db)

	var publisher rabbitmq.PublisherInterface
	if amqpURL := os.Getenv("RABBITMQ_URL"); amqpURL != "" {
		p, err := rabbitmq.NewPublisher(amqpURL, "order.exchange")
		if err != nil {
			log.Fatal().Err(err).Msg("init publisher")
		}
		defer p.Close()
		publisher = p
	}

	userSvc := services.NewUserService(userRepo, orderRepo)
	productSvc := services.NewProductService(productRepo)
	orderSvc := services.NewOrderService(orderRepo, userRepo, publisher)

	handler := httpctl.NewHandler(userSvc, productSvc, orderSvc, devMode)

	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpctl.CORS())

	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info().Str("port", port).Msg("starting store api")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server run")
	}
}
