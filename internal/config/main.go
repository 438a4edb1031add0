//nolint:mnd //no magic number
package config

import (
	"log/slog"

	"github.com/xdoubleu/essentia/v2/pkg/config"
)

type Config struct {
	Env               string
	Port              int
	Throttle          bool
	WebURL            string
	SentryDsn         string
	SampleRate        float64
	DBDsn             string
	Release           string
	StorageURL        string
	Timezone          string
	City              string
	SeatGeekClientID  string
	SeatGeekPerformer string
	SportsTimeout     string
	AreaCacheTTL      string
	MaxSpanDays       int
}

func New(logger *slog.Logger) Config {
	var cfg Config

	parser := config.New(logger)

	cfg.Env = parser.EnvStr("ENV", config.ProdEnv)
	cfg.Port = parser.EnvInt("PORT", 8000)
	cfg.Throttle = parser.EnvBool("THROTTLE", true)
	cfg.WebURL = parser.EnvStr("WEB_URL", "http://localhost:8000")
	cfg.SentryDsn = parser.EnvStr("SENTRY_DSN", "")
	cfg.SampleRate = parser.EnvFloat("SAMPLE_RATE", 1.0)
	cfg.DBDsn = parser.EnvStr("DB_DSN", "postgres://postgres@localhost/postgres")
	cfg.Release = parser.EnvStr("RELEASE", config.DevEnv)

	cfg.StorageURL = parser.EnvStr("STORAGE_URL", "")
	cfg.Timezone = parser.EnvStr("TIMEZONE", "America/New_York")
	cfg.City = parser.EnvStr("CITY", "Philadelphia")

	cfg.SeatGeekClientID = parser.EnvStr("SEATGEEK_CLIENT_ID", "")
	cfg.SeatGeekPerformer = parser.EnvStr("SEATGEEK_PERFORMER", "phillies")
	cfg.SportsTimeout = parser.EnvStr("SPORTS_TIMEOUT", "5s")

	cfg.AreaCacheTTL = parser.EnvStr("AREA_CACHE_TTL", "24h")
	cfg.MaxSpanDays = parser.EnvInt("MAX_SPAN_DAYS", 10)

	return cfg
}
