package main

import (
	"embed"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"github.com/xdoubleu/essentia/v2/pkg/sentrytools"
	"github.com/xdoubleu/essentia/v2/pkg/threading"

	"events.ourphilly.org/internal/config"
	"events.ourphilly.org/internal/jobs"
	"events.ourphilly.org/internal/repositories"
	"events.ourphilly.org/internal/services"
	"events.ourphilly.org/pkg/seatgeek"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

type Application struct {
	logger       *slog.Logger
	config       config.Config
	services     *services.Services
	repositories *repositories.Repositories
	jobQueue     *threading.JobQueue
}

func main() {
	cfg := config.New(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	logger := slog.New(sentrytools.NewLogHandler(cfg.Env,
		slog.NewTextHandler(os.Stdout, nil)))
	db, err := postgres.Connect(
		logger,
		cfg.DBDsn,
		25, //nolint:mnd //no magic number
		"15m",
		60,             //nolint:mnd //no magic number
		10*time.Second, //nolint:mnd //no magic number
		5*time.Minute,  //nolint:mnd //no magic number
	)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	err = applyMigrations(logger, db)
	if err != nil {
		panic(err)
	}

	app, err := NewApplication(logger, cfg, db, seatgeek.New(logger, cfg.SeatGeekClientID))
	if err != nil {
		panic(err)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,  //nolint:mnd //no magic number
		WriteTimeout: 10 * time.Second, //nolint:mnd //no magic number
	}
	err = httptools.Serve(logger, srv, cfg.Env)
	if err != nil {
		logger.Error("failed to serve server", logging.ErrAttr(err))
	}
}

func NewApplication(
	logger *slog.Logger,
	cfg config.Config,
	db postgres.DB,
	sportsClient seatgeek.Client,
) (*Application, error) {
	repos := repositories.New(postgres.NewSpanDB(db))

	svcs, err := services.New(logger, cfg, repos, sportsClient)
	if err != nil {
		return nil, err
	}

	//nolint:mnd //no magic number
	jobQueue := threading.NewJobQueue(logger, 2, 100)

	app := &Application{
		logger:       logger,
		config:       cfg,
		services:     svcs,
		repositories: repos,
		jobQueue:     jobQueue,
	}

	err = app.setJobs()
	if err != nil {
		return nil, err
	}

	return app, nil
}

func (app *Application) setJobs() error {
	//nolint:mnd //no magic number
	return app.jobQueue.AddJob(
		jobs.NewAreaRefreshJob(app.services.Areas, 12*time.Hour),
		func(_ string, _ bool, _ *time.Time) {},
	)
}

func applyMigrations(logger *slog.Logger, db *pgxpool.Pool) error {
	migrationsDB := stdlib.OpenDBFromPool(db)

	goose.SetLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(goose.DialectPostgres)); err != nil {
		return err
	}

	if err := goose.Up(migrationsDB, "migrations"); err != nil {
		return err
	}

	return nil
}
