// seed_admin crea la cuenta de administrador inicial.
//
// Uso: go run ./cmd/seed_admin [-name ...] [-email ...] [-password ...] [-address ...]
// Si el email ya existe no hace nada y termina con código 0.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/jhoicas/store-rating-api/internal/application/auth"
	"github.com/jhoicas/store-rating-api/internal/application/validation"
	"github.com/jhoicas/store-rating-api/internal/domain"
	"github.com/jhoicas/store-rating-api/internal/domain/entity"
	"github.com/jhoicas/store-rating-api/internal/infrastructure/postgres"
	"github.com/jhoicas/store-rating-api/pkg/config"
	"github.com/jhoicas/store-rating-api/pkg/logger"
)

func main() {
	name := flag.String("name", "System Administrator Account", "nombre del administrador (20-60 caracteres)")
	email := flag.String("email", "admin@storerating.com", "email del administrador")
	password := flag.String("password", "Admin@123", "contraseña del administrador")
	address := flag.String("address", "Admin Office, Main Street", "dirección")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed_admin"})

	if !validation.ValidName(*name) || !validation.ValidPassword(*password) || !validation.ValidAddress(*address) {
		log.Error().Msg("datos del administrador inválidos")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if cfg.DB.AutoMigrate {
		if err := postgres.ApplyMigrations(ctx, cfg.DB.ConnectionString()); err != nil {
			log.Error().Err(err).Msg("migraciones")
			os.Exit(1)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("conexión a PostgreSQL")
		os.Exit(1)
	}
	defer pool.Close()

	account, err := auth.CreateAccount(ctx, postgres.NewAccountRepository(pool), *name, *email, *password, *address, entity.RoleAdmin)
	if errors.Is(err, domain.ErrEmailAlreadyExists) {
		log.Info().Str("email", *email).Msg("el administrador ya existe")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("crear administrador")
		pool.Close()
		os.Exit(1)
	}
	log.Info().Str("id", account.ID).Str("email", account.Email).Msg("administrador creado")
}
