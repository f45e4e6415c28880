// Command migrate applies the schema and category seed without starting the API.
package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"aidhub/internal/db"
	"aidhub/internal/infra"
)

func main() {
	_ = godotenv.Load()

	dsn := flag.String("database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
	timeout := flag.Duration("timeout", 30*time.Second, "overall deadline")
	flag.Parse()

	logger := infra.NewLogger(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))
	if *dsn == "" {
		logger.Fatal().Msg("DATABASE_URL or -database-url is required")
	}

	conn, err := sql.Open("postgres", *dsn)
	if err != nil {
		logger.Fatal().Err(err).Msg("open database")
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		logger.Fatal().Err(err).Msg("ping database")
	}
	if err := db.Apply(ctx, conn, logger); err != nil {
		logger.Fatal().Err(err).Msg("apply schema")
	}
	logger.Info().Msg("schema up to date")
}
