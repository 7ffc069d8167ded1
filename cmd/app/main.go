package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"lockerfleet/cmd"
	httpin "lockerfleet/internal/adapters/in/http"
	"lockerfleet/internal/adapters/out/postgres"
	"lockerfleet/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/lib/pq"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// duplicateDatabaseCode is the postgres error code raised when the target
// database already exists.
const duplicateDatabaseCode = "42P04"

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	location, err := time.LoadLocation(configs.TimeZone)
	if err != nil {
		log.Fatalf("Invalid TIME_ZONE %q: %v", configs.TimeZone, err)
	}

	if err = ensureDatabase(configs); err != nil {
		log.Fatalf("Failed to ensure database: %v", err)
	}

	gormDB, err := gorm.Open(gorm_postgres.Open(appDSN(configs)), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, location, logger)

	jobManager := jobs.NewJobManager(
		app.CreateRebindOvertimeDeliveriesCommandHandler(),
		configs.RebindSchedule,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		TimeZone:       goDotEnvVariable("TIME_ZONE"),
		RebindSchedule: goDotEnvVariable("REBIND_CRON"),
		OrderSyncURL:   goDotEnvVariable("ORDER_SYNC_URL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// ensureDatabase creates the application database when it does not exist
// yet. Connects to the maintenance database because postgres cannot create
// a database from within itself.
func ensureDatabase(configs cmd.Config) error {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to open maintenance connection: %w", err)
	}
	defer db.Close()

	_, err = db.Exec("CREATE DATABASE " + pq.QuoteIdentifier(configs.DBName))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == duplicateDatabaseCode {
			return nil
		}
		return fmt.Errorf("failed to create database %s: %w", configs.DBName, err)
	}

	return nil
}

func appDSN(configs cmd.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreateUpdateCabinetCommandHandler(),
		app.CreateDeleteCabinetCommandHandler(),
		app.CreateUpdateLockerStatusCommandHandler(),
		app.CreateApplyTerminalEventCommandHandler(),
		app.CreateGetAllCabinetsQueryHandler(),
		app.CreateGetCabinetDetailsQueryHandler(),
		app.CreateGetAvailableCabinetsQueryHandler(),
		app.CreateGetCabinetLockersQueryHandler(),
		app.CreateGetInactiveLockersQueryHandler(),
		app.CreateGetLockerLogsQueryHandler(),
		app.CreateGetCabinetLockerLogsQueryHandler(),
		app.CreateGetSlotAvailabilityQueryHandler(),
		app.CreateGetLockerStatusesQueryHandler(),
		app.Location(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
