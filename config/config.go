package config

import "os"

// Config carries process configuration read from the environment. The
// entrypoints seed the environment from a .env file when one is present.
type Config struct {
	DBPath    string
	ExportDir string
	PixDir    string
	Port      string
}

func Load() Config {
	return Config{
		DBPath:    getenv("DB_PATH", "foursquare_data.db"),
		ExportDir: getenv("EXPORT_DIR", "."),
		PixDir:    getenv("PIX_DIR", "pix"),
		Port:      getenv("PORT", "8080"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
