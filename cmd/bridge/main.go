package main

import (
	"context"
	"fmt"

	"github.com/dbtbridge/dbtbridge/internal/component"
	"github.com/dbtbridge/dbtbridge/internal/config"
	"github.com/dbtbridge/dbtbridge/internal/logger"
	"github.com/dbtbridge/dbtbridge/internal/server"
	"github.com/dbtbridge/dbtbridge/internal/workers"
	"github.com/dbtbridge/dbtbridge/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("dbt-bridge")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	comp := newComponent(cfg, log)

	defs, err := comp.BuildDefs(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("error building definitions")
	}

	log.Info().
		Str("component", cfg.Component).
		Int("assets", len(defs.Assets)).
		Int("asset_groups", len(defs.AssetGroups)).
		Int("sensors", len(defs.Sensors)).
		Msg("definitions built")

	sensorJobs := make([]workers.Worker, 0, len(defs.Sensors))
	for _, sensor := range defs.Sensors {
		sensorJobs = append(sensorJobs, workers.NewSensorJob(sensor, logRunEvents, log))
	}
	jobs := workers.NewWorkers(sensorJobs...)
	jobs.Start(context.Background())
	defer jobs.Stop()

	handler := server.NewHandler(cfg.Component, defs, log)
	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

// newComponent selects the declarative component by kind and applies the
// bridge-level timing overrides.
func newComponent(cfg *config.Config, log *logger.Logger) component.Component {
	switch cfg.Component {
	case config.ComponentOrchestration:
		c := component.NewOrchestrationComponent(cfg.DBTCloud, log)
		c.SensorInterval = cfg.Workers.PollInterval
		c.RequestTimeout = cfg.Server.RequestTimeout
		return c
	default:
		c := component.NewObservabilityComponent(cfg.DBTCloud, log)
		c.SensorInterval = cfg.Workers.PollInterval
		c.RequestTimeout = cfg.Server.RequestTimeout
		return c
	}
}

// logRunEvents is the bridge's own sensor-event consumer: a host embedding
// the components would hand the events to its run-state machinery instead.
func logRunEvents(ctx context.Context, events []models.RunEvent) {
	log := logger.FromContext(ctx)
	for _, event := range events {
		log.Info().
			Str("event_id", event.EventID).
			Str("kind", string(event.Kind)).
			Int64("run_id", event.RunID).
			Str("message", event.Message).
			Msg("dbt cloud run event")
	}
}
