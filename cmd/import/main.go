package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/swarmtrail/api-go/config"
	"github.com/swarmtrail/api-go/importer"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("no .env file found, using environment as-is")
	}
	cfg := config.Load()

	dir := flag.String("dir", cfg.ExportDir, "directory containing the export's JSON documents")
	dbPath := flag.String("db", cfg.DBPath, "path of the SQLite store")
	pixDir := flag.String("pix", cfg.PixDir, "directory photo files are stored under")
	flag.Parse()

	imp := importer.New(importer.Config{
		ExportDir: *dir,
		DBPath:    *dbPath,
		PixDir:    *pixDir,
	}, logger)

	report, err := imp.Run(context.Background())
	if err != nil {
		logger.Fatal().Err(err).Msg("import failed")
	}

	failed := 0
	for _, fam := range report.Families {
		if fam.Status == importer.StatusFailed {
			failed++
		}
	}
	if failed > 0 {
		logger.Warn().Int("failed_families", failed).Msg("import finished with failures")
		os.Exit(1)
	}
}
