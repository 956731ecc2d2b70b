package FiberConfig

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html/v2"
	"gorm.io/gorm"

	"Garage/Config"
	"Garage/Controllers"
	"Garage/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg Config.AppConfig) {
	// Initialize handlers
	authController := Controllers.NewAuthController(db)
	visitController := Controllers.NewVisitController(db)
	deliveryController := Controllers.NewDeliveryController(db, cfg)
	checklistController := Controllers.NewChecklistController(db)
	companyController := Controllers.NewCompanyController(db)
	backupController := Controllers.NewBackupController(db)
	exportController := Controllers.NewExportController(db)
	photoController := Controllers.NewPhotoController(db, cfg.UploadDir)
	resetController := Controllers.NewResetController(db, cfg.ResetCode)

	// API group
	api := app.Group("/api")

	// Session routes
	api.Post("/login", authController.Login)
	api.Post("/logout", authController.Logout)
	api.Get("/user", middleware.Verify(1), authController.CurrentUser)

	// Visit routes
	visits := api.Group("/visits", middleware.Verify(1))
	visits.Get("/", visitController.GetVisits)
	visits.Post("/", visitController.CreateVisit)

	// Helper routes - place these BEFORE the ID route to avoid conflicts
	visits.Get("/history", visitController.GetHistory)
	visits.Get("/export", exportController.ExportVisits)

	// ID-based routes
	visits.Get("/:id", visitController.GetVisit)
	visits.Put("/:id/save", visitController.SaveVisit)
	visits.Post("/:id/lines", visitController.AddLine)
	visits.Get("/:id/pdf", deliveryController.GetPDF)
	visits.Post("/:id/email", deliveryController.SendEmail)
	visits.Post("/:id/photos", photoController.Upload)
	visits.Get("/:id/photos", photoController.List)

	api.Delete("/photos/:id", middleware.Verify(1), photoController.Delete)

	// Checklist catalog routes
	checklist := api.Group("/checklist", middleware.Verify(1))
	checklist.Get("/", checklistController.GetItems)
	checklist.Post("/", checklistController.AddItem)
	checklist.Delete("/:id", middleware.Verify(3), checklistController.DeleteItem)

	// Company letterhead
	api.Get("/company", middleware.Verify(1), companyController.GetCompany)
	api.Put("/company", middleware.Verify(3), companyController.UpdateCompany)

	// Backup / restore / reset
	api.Get("/backup", middleware.Verify(3), backupController.Export)
	api.Post("/backup/import", middleware.Verify(3), backupController.Import)
	api.Post("/reset", middleware.Verify(3), resetController.Reset)

	// HTML print view
	app.Get("/visits/:id/print", middleware.Verify(1), deliveryController.GetPrintView)

	// Stored photo files
	app.Static("/uploads", cfg.UploadDir)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
}

func FiberConfig(db *gorm.DB, cfg Config.AppConfig) {
	fmt.Println("Server Up...")
	engine := html.New("./Templates", ".html")
	// Html Template engine
	app := fiber.New(fiber.Config{
		Views:     engine,
		BodyLimit: 20 * 1024 * 1024,
	})
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression, // 2
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		MaxAge:       300,
	}))

	SetupRoutes(app, db, cfg)

	log.Fatal(app.Listen(":" + cfg.Port))
}
