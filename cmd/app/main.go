package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"paquexpress/cmd"
	httpserver "paquexpress/internal/adapters/in/http"
	"paquexpress/internal/adapters/out/postgres/agentrepo"
	"paquexpress/internal/adapters/out/postgres/parcelrepo"
	"paquexpress/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Error creating composition root: %v", err)
	}

	startJobs(&app, configs)
	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		EvidenceDir:          goDotEnvVariable("EVIDENCE_DIR"),
		EvidencePublicPrefix: goDotEnvVariable("EVIDENCE_PUBLIC_PREFIX"),
		EvidenceRetention:    durationEnvVariable("EVIDENCE_RETENTION"),
		BcryptCost:           intEnvVariable("BCRYPT_COST"),
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

func durationEnvVariable(key string) time.Duration {
	value, err := time.ParseDuration(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Error parsing %s as duration: %v", key, err)
	}
	return value
}

func intEnvVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Error parsing %s as int: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = db.AutoMigrate(&parcelrepo.ParcelDTO{}, &agentrepo.AgentDTO{})
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return db
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateSweepEvidenceCommandHandler(),
		configs.EvidenceRetention,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpserver.NewServer(
		app.CreateSubmitDeliveryCommandHandler(),
		app.CreateCreateAgentCommandHandler(),
		app.CreateAssignParcelCommandHandler(),
		app.CreateAuthenticateAgentQueryHandler(),
		app.CreateGetPendingParcelsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Static(configs.EvidencePublicPrefix, app.EvidenceStore().Dir())

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
