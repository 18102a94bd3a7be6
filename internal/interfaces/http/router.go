package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/premiarte/premiarte-api/internal/application/auth"
	"github.com/premiarte/premiarte-api/internal/application/budgets"
	"github.com/premiarte/premiarte-api/internal/application/orders"
	"github.com/premiarte/premiarte-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC      *usecase.ProductUseCase
	CategoryUC     *usecase.CategoryUseCase
	ImageUC        *usecase.ImageUseCase
	CustomerUC     *usecase.CustomerUseCase
	ContactUC      *usecase.ContactUseCase
	NewsletterUC   *usecase.NewsletterUseCase
	ResponsibleUC  *usecase.ResponsibleUseCase
	UserUC         *usecase.UserUseCase
	SettingUC      *usecase.SettingUseCase
	CreateBudgetUC *budgets.CreateBudgetUseCase
	BudgetUC       *budgets.BudgetUseCase
	OrderUC        *orders.OrderUseCase
	AuthUC         *auth.AuthUseCase
	BudgetPDF      BudgetPDFGenerator
	JWTSecret      string
}

// Router registra las rutas de la API. Las superficies públicas (storefront)
// van directo sobre /api; el panel de administración cuelga del grupo
// protegido con Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	// Catálogo (público)
	productHandler := NewProductHandler(deps.ProductUC)
	api.Get("/products", productHandler.List)
	api.Get("/products/slug/:slug", productHandler.GetBySlug)

	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	api.Get("/categories", categoryHandler.List)
	api.Get("/categories/:id", categoryHandler.GetByID)

	// Contenido de páginas por clave (público)
	settingHandler := NewSettingHandler(deps.SettingUC)
	api.Get("/settings/:key", settingHandler.GetByKey)

	// Formulario de contacto (público)
	contactHandler := NewContactHandler(deps.ContactUC)
	api.Post("/contacts", contactHandler.Create)

	// Newsletter (público)
	newsletterHandler := NewNewsletterHandler(deps.NewsletterUC)
	api.Post("/newsletter/subscribe", newsletterHandler.Subscribe)
	api.Post("/newsletter/unsubscribe", newsletterHandler.Unsubscribe)

	// Creación de presupuestos: el mismo endpoint sirve al storefront (sin
	// sesión) y al dashboard (con sesión); el token se toma si viene.
	budgetHandler := NewBudgetHandler(deps.CreateBudgetUC, deps.BudgetUC, deps.BudgetPDF)
	api.Post("/budgets", OptionalAuthMiddleware(deps.JWTSecret), budgetHandler.Create)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (administración)
	protected.Post("/products", productHandler.Create)
	protected.Put("/products/prices", productHandler.UpdatePrices)
	protected.Get("/products/:id", productHandler.GetByID)
	protected.Put("/products/:id", productHandler.Update)
	protected.Delete("/products/:id", productHandler.Delete)

	// Categories (administración)
	protected.Post("/categories", categoryHandler.Create)
	protected.Put("/categories/:id", categoryHandler.Update)
	protected.Delete("/categories/:id", categoryHandler.Delete)

	// Images (protegido)
	imageHandler := NewImageHandler(deps.ImageUC)
	images := protected.Group("/images")
	images.Post("/", imageHandler.Create)
	images.Get("/", imageHandler.List)
	images.Get("/:id", imageHandler.GetByID)
	images.Put("/:id", imageHandler.Update)
	images.Delete("/:id", imageHandler.Delete)

	// Customers (protegido)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers := protected.Group("/customers")
	customers.Post("/", customerHandler.Create)
	customers.Post("/import", customerHandler.Import)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Budgets (protegido salvo la creación)
	protected.Get("/budgets", budgetHandler.List)
	protected.Get("/budgets/:id", budgetHandler.GetByID)
	protected.Get("/budgets/:id/pdf", budgetHandler.GetPDF)
	protected.Put("/budgets/:id", budgetHandler.Update)
	protected.Put("/budgets/:id/status", budgetHandler.UpdateStatus)
	protected.Delete("/budgets/:id", budgetHandler.Delete)

	// Orders (protegido)
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup := protected.Group("/orders")
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Put("/:id", orderHandler.Update)
	ordersGroup.Delete("/:id", orderHandler.Delete)

	// Contacts (bandeja, protegido)
	protected.Get("/contacts", contactHandler.List)
	protected.Get("/contacts/:id", contactHandler.GetByID)
	protected.Put("/contacts/:id", contactHandler.Update)
	protected.Delete("/contacts/:id", contactHandler.Delete)

	// Newsletter (administración)
	protected.Get("/newsletter", newsletterHandler.List)
	protected.Put("/newsletter/:id", newsletterHandler.Update)
	protected.Delete("/newsletter/:id", newsletterHandler.Delete)

	// Responsibles (protegido)
	responsibleHandler := NewResponsibleHandler(deps.ResponsibleUC)
	responsibles := protected.Group("/responsibles")
	responsibles.Post("/", responsibleHandler.Create)
	responsibles.Get("/", responsibleHandler.List)
	responsibles.Get("/:id", responsibleHandler.GetByID)
	responsibles.Put("/:id", responsibleHandler.Update)
	responsibles.Delete("/:id", responsibleHandler.Delete)

	// Users (protegido)
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users")
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/me", userHandler.Me)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Settings (administración)
	protected.Get("/settings", settingHandler.List)
	protected.Put("/settings/:id", settingHandler.Update)

	// Cambio de contraseña del usuario autenticado
	protected.Post("/auth/change-password", authHandler.ChangePassword)
}
