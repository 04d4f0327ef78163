package main

import (
	"fmt"

	"github.com/MKhiriev/movisimple/internal/adapter"
	"github.com/MKhiriev/movisimple/internal/client"
	"github.com/MKhiriev/movisimple/internal/config"
	"github.com/MKhiriev/movisimple/internal/logger"
	"github.com/MKhiriev/movisimple/internal/service"
	"github.com/MKhiriev/movisimple/internal/tui"
	"github.com/MKhiriev/movisimple/internal/workers"
	"github.com/MKhiriev/movisimple/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewClientLogger("movisimple-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(serverAdapter, log)

	healthProbe := workers.NewHealthProbe(services.HealthService, cfg.Workers.HealthInterval,
		func(status workers.HealthStatus) {
			log.Info().Stringer("status", status).Msg("server availability changed")
		}, log)

	ui := tui.New(services, healthProbe, buildInfo, log)

	app := client.NewApp(ui, workers.NewWorkers(healthProbe), log)
	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
