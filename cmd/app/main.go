package main

import (
	"fmt"
	"log/slog"
	"os"

	"casetrack/cmd"
	casehttp "casetrack/internal/adapters/in/http"
	"casetrack/internal/adapters/out/postgres/caserepo"
	"casetrack/internal/adapters/out/postgres/qualitycheckrepo"
	"casetrack/internal/adapters/out/techniciandir"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := app.CreateJobManager(logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		LabCodes:   goDotEnvVariable("LAB_CODES"),
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

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError lets the case repository detect unique-index collisions
	// as gorm.ErrDuplicatedKey, which the number allocator depends on.
	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&caserepo.CaseDTO{},
		&qualitycheckrepo.QualityCheckDTO{},
		&techniciandir.TechnicianDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := casehttp.NewServer(
		app.CreateCreateCaseCommandHandler(),
		app.CreateTransitionCaseStatusCommandHandler(),
		app.CreateAssignTechnicianCommandHandler(),
		app.CreateSoftDeleteCaseCommandHandler(),
		app.CreateOpenQualityCheckCommandHandler(),
		app.CreateCompleteQualityCheckCommandHandler(),
		app.CreateGetActiveCasesQueryHandler(),
		app.CreateGetCaseQualityChecksQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
