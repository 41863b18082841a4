// Aplica el esquema de la base de datos (idempotente: todo el DDL usa
// IF NOT EXISTS). Uso: go run ./cmd/migrate
package main

import (
	"context"
	"time"

	"github.com/matex-app/matex-api/internal/infrastructure/postgres"
	"github.com/matex-app/matex-api/pkg/config"
	"github.com/matex-app/matex-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Name: cfg.App.Name})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, postgres.Schema); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}
	log.Info().Str("db", cfg.DB.DBName).Msg("esquema aplicado")
}
