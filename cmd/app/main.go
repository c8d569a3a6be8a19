package main

import (
	"fmt"
	"net/http"
	"os"

	"cleanly/cmd"
	httpin "cleanly/internal/adapters/in/http"
	"cleanly/internal/adapters/out/postgres/notificationrepo"
	"cleanly/internal/adapters/out/postgres/orderrepo"
	"cleanly/internal/adapters/out/postgres/pricelistrepo"
	"cleanly/internal/adapters/out/postgres/sequencerepo"
	"cleanly/internal/adapters/out/postgres/userrepo"
	"cleanly/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreateSendPaymentRemindersCommandHandler(),
		app.Logger(),
	)
	if err := jobManager.StartAll(); err != nil {
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

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	if err = gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&orderrepo.OrderDTO{},
		&notificationrepo.NotificationDTO{},
		&pricelistrepo.PriceEntryDTO{},
		&sequencerepo.SequenceDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateRegisterUserCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateAdvanceOrderStatusCommandHandler(),
		app.CreateRecordWeighingCommandHandler(),
		app.CreateConfirmPaymentCommandHandler(),
		app.CreateRateOrderCommandHandler(),
		app.CreateFileComplaintCommandHandler(),
		app.CreateDeleteNotificationCommandHandler(),
		app.CreateMarkNotificationsReadCommandHandler(),
		app.CreateLoginQueryHandler(),
		app.CreateGetUserOrdersQueryHandler(),
		app.CreateGetOrdersByStageQueryHandler(),
		app.CreateGetComplaintsQueryHandler(),
		app.CreateGetRevenueQueryHandler(),
		app.CreateGetNotificationsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
