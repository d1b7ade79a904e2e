// Command initdb creates the database schema and exits. It runs the same
// embedded migrations the server applies on startup, so it is only needed
// when the schema should be prepared ahead of the first launch.
package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/rebaby/internal/config"
	"github.com/MKhiriev/rebaby/internal/logger"
	"github.com/MKhiriev/rebaby/internal/store"
)

func main() {
	_ = godotenv.Load()

	log := logger.NewLogger("rebaby-initdb")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	db, err := store.Connect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	fmt.Println("Database created")
}
