package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"foodapp/internal/config"
	"foodapp/internal/handler"
	"foodapp/internal/infra/db"
	"foodapp/internal/infra/logger"
	"foodapp/internal/infra/messaging"
	infraRepo "foodapp/internal/infra/repository"
	"foodapp/internal/infra/token"
	"foodapp/internal/server"
	"foodapp/internal/usecase"
	"foodapp/internal/validator"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.Init(cfg.LogLevel, "foodapp")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, log, migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "run AutoMigrate before serving")
	return cmd
}

func serve(ctx context.Context, cfg config.Config, log *slog.Logger, migrate bool) error {
	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if migrate {
		if err := db.Migrate(gormDB); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	foodRepo := infraRepo.NewFoodGormRepository(gormDB)
	promoRepo := infraRepo.NewPromoCodeGormRepository(gormDB)
	auditRepo := infraRepo.NewAuditLogGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	clock := &realClock{loc: cfg.Location}
	hasher := token.NewBcryptPasswordHasher(cfg.BcryptCost)
	issuer := token.NewJWTIssuer(cfg.JWTSecret, cfg.AccessTokenTTL)

	//注文イベント。AMQP_URLが無ければ送らない
	var events usecase.OrderEventPublisher = usecase.NoopEventPublisher{}
	if cfg.AMQPURL != "" {
		pub, err := messaging.NewRabbitMQPublisher(cfg.AMQPURL)
		if err != nil {
			return fmt.Errorf("connect rabbitmq: %w", err)
		}
		defer pub.Close()
		events = pub
	}

	//Usecase生成
	authUC := usecase.NewAuthUsecase(userRepo, auditRepo, hasher, hasher, issuer, clock, validator.NewAuthValidator(userRepo))
	foodUC := usecase.NewFoodUsecase(foodRepo, txm, validator.NewFoodValidator(), clock)
	promoUC := usecase.NewPromoCodeUsecase(promoRepo, txm, validator.NewPromoCodeValidator(), clock)
	orderUC := usecase.NewOrderUsecase(txm, validator.NewOrderValidator(), clock, events)
	adminOrderUC := usecase.NewAdminOrderUsecase(txm, clock, events)
	auditUC := usecase.NewAuditLogUsecase(auditRepo)

	//Handler生成
	e := server.New(log)
	server.RegisterRoutes(e, cfg, userRepo, server.Handlers{
		Auth:       handler.NewAuthHandler(authUC),
		Food:       handler.NewFoodHandler(foodUC),
		AdminFood:  handler.NewAdminFoodHandler(foodUC),
		Order:      handler.NewOrderHandler(orderUC),
		AdminOrder: handler.NewAdminOrderHandler(adminOrderUC),
		AdminPromo: handler.NewAdminPromoCodeHandler(promoUC),
		AdminUser:  handler.NewAdminUserHandler(authUC, auditUC),
	})

	//Server起動
	return server.Start(ctx, e, cfg.Addr())
}
