package main

import (
	"github.com/alimikegami/catalog-service/config"
	"github.com/alimikegami/catalog-service/internal/app"
	"github.com/alimikegami/catalog-service/internal/infrastructure/message-queue/kafka"
	"github.com/alimikegami/catalog-service/internal/service"
	"github.com/alimikegami/catalog-service/pkg/clock"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newServeCommand(conf *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, conf)
		},
	}

	cmd.Flags().StringVar(&conf.ServicePort, "port", conf.ServicePort, "HTTP port")
	cmd.Flags().StringVar(&conf.MetricsPort, "metrics-port", conf.MetricsPort, "prometheus port, disabled when empty")

	return cmd
}

func runServe(cmd *cobra.Command, conf *config.Config) error {
	ctx := cmd.Context()

	if conf.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is not set, admin login is disabled")
	}

	db, err := openStore(ctx, conf)
	if err != nil {
		return err
	}
	defer db.Close()

	var publisher service.EventPublisher = service.NoopPublisher{}
	if conf.KafkaConfig.BrokerAddress != "" {
		producer := kafka.CreateKafkaProducer(conf.KafkaConfig)
		defer func() {
			if err := producer.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close kafka producer")
			}
		}()
		publisher = producer
	}

	server := app.App{
		DB:        db,
		Config:    conf,
		Publisher: publisher,
		Clock:     clock.RealClock{},
	}

	server.Init()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	if err := server.StopServer(); err != nil {
		log.Error().Err(err).Msg("Failed to stop server cleanly")
	}

	return <-errCh
}
