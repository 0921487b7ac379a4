package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/FilaVirtual-api/internal/application/auth"
	"github.com/jhoicas/FilaVirtual-api/internal/application/reports"
	"github.com/jhoicas/FilaVirtual-api/internal/application/usecase"
	"github.com/jhoicas/FilaVirtual-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	VendorUC       *usecase.VendorUseCase
	MenuUC         *usecase.MenuUseCase
	QueueUC        *usecase.QueueUseCase
	NotificationUC *usecase.NotificationUseCase
	StatsUC        *usecase.StatsUseCase
	PDFUC          *reports.PDFUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público). La pseudo-sesión demo también es pública: existe
	// justamente para cuando no hay sesión real del proveedor.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/confirm", authHandler.Confirm)
	authGroup.Post("/qr", authHandler.QRLogin)
	authGroup.Get("/demo-session", authHandler.DemoSession)
	authGroup.Delete("/demo-session", authHandler.DemoLogout)

	// Vendors (público el alta y la consulta: el registro de staff necesita
	// un vendor existente).
	vendors := api.Group("/vendors")
	vendorHandler := NewVendorHandler(deps.VendorUC)
	vendors.Post("/", vendorHandler.Create)
	vendors.Get("/", vendorHandler.List)
	vendors.Get("/:id", vendorHandler.Get)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Modificar un vendor requiere ser owner del propio puesto.
	protected.Put("/vendors/:id", RequireRole(entity.RoleOwner), vendorHandler.Update)

	// Menú (protegido; mutación solo para owners)
	menu := protected.Group("/menu")
	menuHandler := NewMenuHandler(deps.MenuUC)
	menu.Get("/", menuHandler.List)
	menu.Post("/", RequireRole(entity.RoleOwner), menuHandler.Create)
	menu.Put("/:id", RequireRole(entity.RoleOwner), menuHandler.Update)
	menu.Delete("/:id", RequireRole(entity.RoleOwner), menuHandler.Delete)

	// Fila virtual (protegido)
	queue := protected.Group("/queue")
	queueHandler := NewQueueHandler(deps.QueueUC)
	queue.Post("/tickets", queueHandler.Create)
	queue.Get("/tickets", queueHandler.List)
	queue.Get("/tickets/:id", queueHandler.Get)
	queue.Patch("/tickets/:id/status", queueHandler.Advance)

	// Notificaciones a clientes (protegido)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Post("/", notificationHandler.Send)
	notifications.Get("/ticket/:ticketId", notificationHandler.ListByTicket)

	// Métricas y reportes (protegido; escribir métricas solo owners)
	stats := protected.Group("/stats")
	statsHandler := NewStatsHandler(deps.StatsUC, deps.PDFUC)
	stats.Get("/", statsHandler.List)
	stats.Put("/", RequireRole(entity.RoleOwner), statsHandler.Upsert)
	stats.Get("/report", statsHandler.DownloadReport)
}
