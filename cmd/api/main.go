package main

import (
	"log"
	"time"

	config "github.com/anjiri1684/tuition_tracker/configs"
	"github.com/anjiri1684/tuition_tracker/database"
	"github.com/anjiri1684/tuition_tracker/jobs"
	"github.com/anjiri1684/tuition_tracker/notifications"
	"github.com/anjiri1684/tuition_tracker/routes"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	db, err := database.Connect(config.Config("DATABASE_URL"))
	if err != nil {
		log.Fatalf("🔥 %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("🔥 %v", err)
	}
	if err := database.SeedAdmin(db); err != nil {
		log.Fatalf("🔥 %v", err)
	}
	notifications.InitEmailService()

	c := cron.New()
	c.AddFunc("0 18 * * *", jobs.UnmarkedAttendanceReminder(db))
	go c.Start()
	log.Println("✅ Cron job for attendance reminders scheduled successfully.")

	app := fiber.New(fiber.Config{
		AppName:       "Tuition Tracker",
		CaseSensitive: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Student Attendance & Payment Tracker API",
			"version": "1.0.0",
		})
	})

	routes.AuthRoutes(app, db)
	routes.StudentRoutes(app, db)
	routes.AttendanceRoutes(app, db)
	routes.PaymentRoutes(app, db)
	routes.DashboardRoutes(app, db)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	port := config.Config("PORT")
	if port == "" {
		port = "5000"
	}

	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
