package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"

	"academic-records-backend/config"
	"academic-records-backend/controllers/v1/approval"
	"academic-records-backend/controllers/v1/auth"
	"academic-records-backend/controllers/v1/contributions"
	"academic-records-backend/controllers/v1/dict"
	"academic-records-backend/controllers/v1/employees"
	"academic-records-backend/controllers/v1/exports"
	"academic-records-backend/controllers/v1/outputs"
	"academic-records-backend/controllers/v1/units"
	"academic-records-backend/controllers/v1/users"
	"academic-records-backend/db"
	_ "academic-records-backend/docs"
	"academic-records-backend/fiberlog"
	"academic-records-backend/initializers"
	"academic-records-backend/lib/metrics"
	"academic-records-backend/middleware"
)

// @title Academic records API
// @version 1.0
// @description Admin API of the academic records backend
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: config.Conf.App.BodyLimit,
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: config.Conf.App.SwaggerDoc,
	}
	app.Use(swagger.New(swaggerCfg))
	app.Get("/metrics", metrics.Handler())
	app.Get("/health", func(ctx *fiber.Ctx) error {
		if err := db.PingDB(); err != nil {
			log.WithError(err).Error("health check failed")
			return ctx.SendStatus(fiber.StatusServiceUnavailable)
		}
		return ctx.SendStatus(fiber.StatusOK)
	})

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	apiV1.Use(middleware.Metrics())
	apiV1.Use(middleware.WithBodyLimit(int64(config.Conf.App.BodyLimit)))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PATCH, DELETE, PUT",
		ExposeHeaders: "Content-Disposition, X-Archive-ID",
	}))
	auth.InitAuthApiRouters(apiV1)

	// everything below is staff only
	apiV1.Use(middleware.AuthorizationRequired(), middleware.StaffRequired())
	units.InitUnitsApiRouters(apiV1)
	employees.InitEmployeesApiRouters(apiV1)
	users.InitUsersApiRouters(apiV1)
	contributions.InitContributionsApiRouters(apiV1)
	outputs.InitOutputsApiRouters(apiV1)
	approval.InitApprovalApiRouters(apiV1)
	exports.InitExportsApiRouters(apiV1)

	//dict
	dicts := fiber.New()
	apiV1.Mount("/dict", dicts)
	dicts.Use(middleware.AuthorizationRequired(), middleware.StaffRequired())
	dict.InitChoicesDictApiRouters(dicts)
	dict.InitEmployeeStatusDictApiRouters(dicts)
	dict.InitAcademicDegreeDictApiRouters(dicts)
	dict.InitDisciplineDictApiRouters(dicts)
	dict.InitEmployeeGroupDictApiRouters(dicts)
	dict.InitPositionDictApiRouters(dicts)
	dict.InitPublisherDictApiRouters(dicts)
	dict.InitJournalDictApiRouters(dicts)
	dict.InitAuthorStatusDictApiRouters(dicts)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
