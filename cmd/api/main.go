package main

import (
	"context"
	"time"

	"github.com/salesflow/metrics-api/infrastructure/database/postgres"
	"github.com/salesflow/metrics-api/infrastructure/repository"
	"github.com/salesflow/metrics-api/internal/api"
	"github.com/salesflow/metrics-api/internal/config"
	"github.com/salesflow/metrics-api/internal/usecases/authenticating"
	"github.com/salesflow/metrics-api/internal/usecases/forecasting"
	"github.com/salesflow/metrics-api/internal/usecases/funneling"
	"github.com/salesflow/metrics-api/internal/usecases/ranking"
	"github.com/salesflow/metrics-api/internal/usecases/reporting"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	opportunityRepo := repository.NewOpportunityRepository(pgConn)
	lineItemRepo := repository.NewLineItemRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	customerRepo := repository.NewCustomerRepository(pgConn)
	activityRepo := repository.NewActivityRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	funnelService := funneling.NewService(opportunityRepo)
	rankingService := ranking.NewSellerRankingService(saleRepo, userRepo)
	forecastService := forecasting.NewService(opportunityRepo, saleRepo)

	metricsService := reporting.NewService(
		saleRepo,
		customerRepo,
		lineItemRepo,
		productRepo,
		activityRepo,
		funnelService,
		rankingService,
	)

	server, err := api.New(
		cfg,
		metricsService,
		forecastService,
		funnelService,
		authenticator,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
