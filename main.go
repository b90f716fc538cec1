package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"HRMS-Lite/config"
	"HRMS-Lite/handlers"
	"HRMS-Lite/repository"
	"HRMS-Lite/router"
	"HRMS-Lite/seeder"
	"HRMS-Lite/services"
)

// @title HRMS Lite API
// @version 1.0
// @description Employee directory and daily attendance for a single HR admin.
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:3000
// @BasePath /api
// @schemes http https
//
// @tag.name Employees
// @tag.description Employee directory
//
// @tag.name Attendance
// @tag.description Daily attendance ledger
//
// @tag.name Dashboard
// @tag.description Counters for the admin dashboard
func main() {
	seed := flag.Bool("seed", false, "load the sample employees (and attendance with -seed-days) before serving")
	reset := flag.Bool("reset", false, "delete every employee and its attendance before seeding")
	seedDays := flag.Int("seed-days", 0, "with -seed, mark attendance for each weekday of the last N days")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	employeeRepo, attendanceRepo, tx := openStore(cfg)
	defer config.DisconnectDB(context.Background())

	clock := services.SystemClock()
	cascade := services.NewCascadeCoordinator(employeeRepo, attendanceRepo, tx)
	directory := services.NewEmployeeService(employeeRepo, cascade, clock)
	ledger := services.NewAttendanceService(attendanceRepo, employeeRepo, clock)
	dashboard := services.NewDashboardService(employeeRepo, attendanceRepo, clock)

	if *reset || *seed {
		if err := runSeeder(directory, ledger, *reset, *seed, *seedDays); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
	}

	app := fiber.New(fiber.Config{AppName: "HRMS Lite"})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	config.SetupCORS(app, cfg.AllowedOrigins)
	app.Use(logger.New(logger.Config{
		Format: "${time} [${locals:requestid}] ${status} - ${latency} ${method} ${path}\n",
	}))

	router.SetupRoutes(app, router.Handlers{
		Employee:   handlers.NewEmployeeHandler(directory, ledger, cfg.RequestTimeout),
		Attendance: handlers.NewAttendanceHandler(ledger, cfg.RequestTimeout),
		Dashboard:  handlers.NewDashboardHandler(dashboard, cfg.RequestTimeout),
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("Server running on port %s (store: %s)", cfg.Port, cfg.StoreDriver)
	log.Printf("API Documentation: http://localhost:%s/docs/index.html", cfg.Port)
	log.Printf("CORS enabled for origins: %v", cfg.AllowedOrigins)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}

func openStore(cfg *config.AppConfig) (repository.EmployeeRepository, repository.AttendanceRepository, repository.TxManager) {
	if cfg.StoreDriver == config.DriverMemory {
		log.Println("Using in-memory store; data is lost on exit")
		store := repository.NewMemoryStore()
		return store.Employees(), store.Attendances(), repository.NoopTxManager{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := config.MongoConnect(ctx, cfg.MONGOSTRING)
	if err != nil {
		log.Fatalf("MongoDB: %v", err)
	}
	db := client.Database(cfg.MongoDBName)
	if err := config.InitDatabase(ctx, db); err != nil {
		config.DisconnectDB(context.Background())
		log.Fatalf("MongoDB indexes: %v", err)
	}

	employees := db.Collection(config.EmployeeCollection)
	attendances := db.Collection(config.AttendanceCollection)

	var tx repository.TxManager = repository.NoopTxManager{}
	if cfg.MongoTransactions {
		log.Println("Employee deletion runs in a transaction")
		tx = repository.NewMongoTxManager(client)
	}
	return repository.NewEmployeeRepository(employees), repository.NewAttendanceRepository(attendances, employees), tx
}

func runSeeder(directory seeder.Directory, ledger seeder.Ledger, reset, seed bool, days int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if reset {
		if _, err := seeder.ResetData(ctx, directory); err != nil {
			return err
		}
	}
	if !seed {
		return nil
	}
	if _, err := seeder.SeedEmployees(ctx, directory); err != nil {
		return err
	}
	if days > 0 {
		if _, err := seeder.SeedAttendance(ctx, directory, ledger, time.Now().UTC(), days); err != nil {
			return err
		}
	}
	return nil
}
