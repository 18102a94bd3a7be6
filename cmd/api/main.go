package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/premiarte/premiarte-api/internal/application/auth"
	"github.com/premiarte/premiarte-api/internal/application/budgets"
	"github.com/premiarte/premiarte-api/internal/application/orders"
	"github.com/premiarte/premiarte-api/internal/application/usecase"
	"github.com/premiarte/premiarte-api/internal/infrastructure/mail"
	infrapdf "github.com/premiarte/premiarte-api/internal/infrastructure/pdf"
	"github.com/premiarte/premiarte-api/internal/infrastructure/postgres"
	httpRouter "github.com/premiarte/premiarte-api/internal/interfaces/http"
	"github.com/premiarte/premiarte-api/pkg/config"
	"github.com/premiarte/premiarte-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	imageRepo := postgres.NewImageRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	budgetRepo := postgres.NewBudgetRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	newsletterRepo := postgres.NewNewsletterRepository(pool)
	responsibleRepo := postgres.NewResponsibleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	settingRepo := postgres.NewSettingRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	mailer := mail.NewSMTPMailer(cfg.SMTP, log)

	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, imageRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	imageUC := usecase.NewImageUseCase(imageRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	contactUC := usecase.NewContactUseCase(contactRepo, mailer, log)
	newsletterUC := usecase.NewNewsletterUseCase(newsletterRepo)
	responsibleUC := usecase.NewResponsibleUseCase(responsibleRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	settingUC := usecase.NewSettingUseCase(settingRepo)

	createBudgetUC := budgets.NewCreateBudgetUseCase(
		txRunner, customerRepo, productRepo, mailer, log,
	)
	budgetUC := budgets.NewBudgetUseCase(
		txRunner, budgetRepo, customerRepo, productRepo, responsibleRepo,
	)
	orderUC := orders.NewOrderUseCase(txRunner, orderRepo, customerRepo, productRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, mailer, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Premiarte API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:      productUC,
		CategoryUC:     categoryUC,
		ImageUC:        imageUC,
		CustomerUC:     customerUC,
		ContactUC:      contactUC,
		NewsletterUC:   newsletterUC,
		ResponsibleUC:  responsibleUC,
		UserUC:         userUC,
		SettingUC:      settingUC,
		CreateBudgetUC: createBudgetUC,
		BudgetUC:       budgetUC,
		OrderUC:        orderUC,
		AuthUC:         authUC,
		BudgetPDF:      infrapdf.NewMarotoBudgetGenerator(),
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
