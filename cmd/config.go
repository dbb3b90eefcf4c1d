package main

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	driverBadger   = "badger"
	driverPostgres = "postgres"
)

type Config struct {
	Host            string        `env:"HOST,default=localhost" validate:"required"`
	Port            int           `env:"PORT,default=8080" validate:"min=1,max=65535"`
	GrpcHealthPort  int           `env:"GRPC_HEALTH_PORT,default=9090" validate:"min=0,max=65535"`
	NumberOfWorkers int           `env:"NUMBER_OF_WORKERS,default=8" validate:"min=1"`
	QueueSize       int           `env:"QUEUE_SIZE,default=256" validate:"min=1"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s" validate:"gt=0"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,default=30s" validate:"gte=0"`
	StoreDriver     string        `env:"STORE_DRIVER,default=badger" validate:"oneof=badger postgres"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH,default=./data/badger" validate:"required_if=StoreDriver badger"`
	PostgresDSN     string        `env:"POSTGRES_DSN" validate:"required_if=StoreDriver postgres"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
}

// loadConfig reads an optional .env file, then the environment.
// Variables already set in the environment win over the file.
func loadConfig() (Config, error) {
	_ = godotenv.Load()

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}
