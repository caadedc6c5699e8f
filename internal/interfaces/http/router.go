package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Activos-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Commands   AssetCommands
	Queries    AssetQueries
	PDF        SchedulePDF
	Categories CategoryService
	Disposals  DisposalQueries
	Reports    ValuationReports
	JWTSecret  string // vacío -> API sin autenticación (desarrollo, CLI local)
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Lectura: admin o auditor. Escritura: solo admin.
	api := app.Group("/api")
	read, write := passThrough, passThrough
	if deps.JWTSecret != "" {
		api = app.Group("/api", AuthMiddleware(deps.JWTSecret))
		read = RequireRole(jwt.RoleAdmin, jwt.RoleAuditor)
		write = RequireRole(jwt.RoleAdmin)
	}

	assetHandler := NewAssetHandler(deps.Commands, deps.Queries, deps.PDF)
	assets := api.Group("/assets")
	assets.Post("/", write, assetHandler.Create)
	assets.Get("/", read, assetHandler.List)
	assets.Get("/:id", read, assetHandler.GetByID)
	assets.Post("/:id/transfer", write, assetHandler.Transfer)
	assets.Post("/:id/dispose", write, assetHandler.Dispose)
	assets.Put("/:id/status", write, assetHandler.UpdateStatus)
	assets.Get("/:id/depreciation.pdf", read, assetHandler.SchedulePDF)
	assets.Get("/:id/depreciation", read, assetHandler.Schedule)
	assets.Get("/:id/transfers", read, assetHandler.Transfers)
	assets.Get("/:id/history", read, assetHandler.History)

	api.Post("/depreciation/preview", read, assetHandler.Preview)

	categoryHandler := NewCategoryHandler(deps.Categories)
	categories := api.Group("/categories")
	categories.Get("/", read, categoryHandler.List)
	categories.Post("/", write, categoryHandler.Create)
	categories.Put("/:id", write, categoryHandler.Rename)
	categories.Delete("/:id", write, categoryHandler.Delete)

	notificationHandler := NewNotificationHandler(deps.Disposals)
	api.Get("/disposals", read, notificationHandler.Disposals)
	api.Get("/notifications", read, notificationHandler.List)
	api.Put("/notifications/:id/read", write, notificationHandler.MarkRead)

	reportHandler := NewReportHandler(deps.Reports)
	reports := api.Group("/reports")
	reports.Get("/category-summary", read, reportHandler.CategorySummary)
	reports.Get("/category-summary/detailed", read, reportHandler.CategoryDetailed)
}

func passThrough(c *fiber.Ctx) error { return c.Next() }
