package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"bookstore/cmd"
	adapterhttp "bookstore/internal/adapters/in/http"
	"bookstore/internal/adapters/out/postgres/bookrepo"
	"bookstore/internal/adapters/out/postgres/customerrepo"
	"bookstore/internal/adapters/out/postgres/orderrepo"
	"bookstore/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// @title Bookstore API
// @version 1.0
// @description Order processing service for a bookstore: catalog, customers, purchase orders and shipments.
// @BasePath /api/v1
func main() {
	configs := getConfigs()

	gormDB, err := gorm.Open(postgres.Open(configs.PostgresDSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&bookrepo.BookDTO{},
		&customerrepo.CustomerDTO{},
		&orderrepo.OrderDTO{},
	); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateGetUnshippedOrdersQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		UniqueNaturalKeys: goDotEnvBool("UNIQUE_NATURAL_KEYS"),
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

// goDotEnvBool reads an optional boolean flag; absent or malformed
// values default to false.
func goDotEnvBool(key string) bool {
	value, err := strconv.ParseBool(goDotEnvVariable(key))
	if err != nil {
		return false
	}
	return value
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := adapterhttp.NewServer(
		app.CreateRegisterBookCommandHandler(),
		app.CreateRegisterCustomerCommandHandler(),
		app.CreateUpdateCustomerAddressCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateShipOrderCommandHandler(),
		app.CreateFindBookQueryHandler(),
		app.CreateFindCustomerQueryHandler(),
		app.CreateGetBookPriceQueryHandler(),
		app.CreateGetCustomerBalanceQueryHandler(),
		app.CreateGetShipmentStatusQueryHandler(),
		app.CreateGetOrderStatusReportQueryHandler(),
		app.CreateGetUnshippedOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
