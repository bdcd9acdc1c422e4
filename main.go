package main

import (
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"holdem-engine/engine"
	"holdem-engine/models"
	"holdem-engine/server"
)

type Config struct {
	ListenAddress string
	Environment   string
	TableDefaults models.TableConfig
}

// LoadConfig reads configuration from the environment, with a .env
// file as optional source.
func LoadConfig() Config {
	godotenv.Load()

	return Config{
		ListenAddress: getEnv("LISTEN_ADDRESS", ":8080"),
		Environment:   getEnv("ENV", "development"),
		TableDefaults: models.TableConfig{
			SmallBlind: getEnvInt("DEFAULT_SMALL_BLIND", 10),
			BigBlind:   getEnvInt("DEFAULT_BIG_BLIND", 20),
			MaxPlayers: getEnvInt("DEFAULT_MAX_PLAYERS", 9),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func main() {
	cfg := LoadConfig()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Environment == "development" {
		log.SetLevel(logrus.DebugLevel)
	}

	tableManager := engine.NewTableManager()
	tcpServer := server.NewTCPServer(cfg.ListenAddress, tableManager, cfg.TableDefaults, log)

	go func() {
		log.WithField("address", cfg.ListenAddress).Info("holdem engine starting")
		if err := tcpServer.Start(); err != nil {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("shutting down")
	tcpServer.Stop()
}
