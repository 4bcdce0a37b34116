package main

import (
	"context"
	"crm-server/cmd/config"
	"crm-server/internal/infra/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{AddSource: true, Level: slog.LevelInfo})),
	)

	direction := pflag.String("direction", string(sql.MigrateUp), "migration direction, up or down")
	steps := pflag.Int("steps", 0, "number of migrations to apply, 0 applies all of them")
	url := pflag.String("url", "", "postgres connection url, defaults to database.url from the configuration")
	configFile := pflag.String("config", "", "path to the server configuration file")
	status := pflag.Bool("status", false, "report the applied schema version and exit")
	pflag.Parse()

	if err := run(*direction, *steps, *url, *configFile, *status); err != nil {
		slog.Error("migration failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(direction string, steps int, url, configFile string, status bool) error {
	if url == "" {
		config.UseConfigFile(configFile)
		url = config.LoadConfig().Database.URL
	}
	if url == "" {
		return fmt.Errorf("no database url given")
	}

	versions, err := sql.MigrationVersions()
	if err != nil {
		return err
	}
	if status {
		return reportStatus(url, len(versions))
	}

	slog.Info("applying migrations",
		slog.String("direction", direction),
		slog.Int("steps", steps),
		slog.Int("embedded", len(versions)),
	)

	if err := sql.RunMigrations(url, sql.MigrationDirection(direction), steps); err != nil {
		return err
	}

	slog.Info("migrations applied")
	return nil
}

func reportStatus(url string, embedded int) error {
	db := sql.NewPosgreDatabase(url)
	if err := db.Open(); err != nil {
		return err
	}
	defer db.Close()

	rows, err := db.Query(context.Background(),
		"SELECT version::text || CASE WHEN dirty THEN ' (dirty)' ELSE '' END FROM schema_migrations")
	if err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	if len(rows) == 0 {
		slog.Info("no migration applied", slog.Int("embedded", embedded))
		return nil
	}

	slog.Info("schema version", slog.String("version", string(rows[0])), slog.Int("embedded", embedded))
	return nil
}
