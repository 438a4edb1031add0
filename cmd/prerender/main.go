// Command prerender renders static HTML snapshots of the upcoming timeline
// windows plus a sitemap, for crawlers and cheap CDN serving.
package main

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"github.com/xdoubleu/essentia/v2/pkg/sentrytools"
	tpltools "github.com/xdoubleu/essentia/v2/pkg/tpl"

	"events.ourphilly.org/internal/config"
	"events.ourphilly.org/internal/repositories"
	"events.ourphilly.org/internal/services"
	"events.ourphilly.org/internal/timeutil"
	"events.ourphilly.org/pkg/seatgeek"
)

//go:embed templates/html/*.html
var htmlTemplates embed.FS

const lookaheadDays = 7

func main() {
	cfg := config.New(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	logger := slog.New(sentrytools.NewLogHandler(cfg.Env,
		slog.NewTextHandler(os.Stdout, nil)))

	outputDir := os.Getenv("PRERENDER_DIR")
	if outputDir == "" {
		outputDir = "dist"
	}

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

	repos := repositories.New(postgres.NewSpanDB(db))
	svcs, err := services.New(logger, cfg, repos, seatgeek.New(logger, cfg.SeatGeekClientID))
	if err != nil {
		panic(err)
	}

	err = run(context.Background(), logger, cfg, svcs, outputDir)
	if err != nil {
		logger.Error("prerender failed", logging.ErrAttr(err))
		os.Exit(1)
	}
}

func run(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.Config,
	svcs *services.Services,
	outputDir string,
) error {
	tpl := template.Must(template.ParseFS(htmlTemplates, "templates/html/*.html"))

	//nolint:mnd //standard directory mode
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}

	loc := svcs.Location
	today := timeutil.StartOfDay(timeutil.ZonedNow(loc))

	paths := []string{}
	for i := 0; i <= lookaheadDays; i++ {
		day := today.AddDate(0, 0, i)
		timeline, err := svcs.Timeline.Day(ctx, day)
		if err != nil {
			return err
		}

		name := fmt.Sprintf("day-%s.html", timeutil.ISODate(day))
		err = renderPage(tpl, outputDir, name, pageData(
			"Events on "+day.Format("January 2, 2006"),
			timeline,
		))
		if err != nil {
			return err
		}

		paths = append(paths, collectPaths(timeline)...)
		logger.Info(
			"rendered day",
			slog.String("date", timeutil.ISODate(day)),
			slog.Int("events", len(timeline.Events)),
		)
	}

	weekend, err := svcs.Timeline.Weekend(ctx)
	if err != nil {
		return err
	}
	err = renderPage(tpl, outputDir, "weekend.html", pageData(
		"This Weekend in Philadelphia",
		weekend,
	))
	if err != nil {
		return err
	}
	paths = append(paths, collectPaths(weekend)...)

	return writeSitemap(outputDir, cfg.WebURL, paths)
}

func pageData(title string, timeline *services.Timeline) map[string]any {
	return map[string]any{
		"Title":  title,
		"Start":  timeutil.ISODate(timeline.Window.Start),
		"End":    timeutil.ISODate(timeline.Window.End),
		"Events": timeline.Events,
	}
}

func renderPage(
	tpl *template.Template,
	outputDir string,
	name string,
	data map[string]any,
) error {
	f, err := os.Create(filepath.Join(outputDir, name))
	if err != nil {
		return err
	}
	defer f.Close()

	tpltools.RenderWithPanic(tpl, f, "timeline.html", data)
	return nil
}

func collectPaths(timeline *services.Timeline) []string {
	paths := []string{}
	for _, ev := range timeline.Events {
		if ev.DetailPath != "" {
			paths = append(paths, ev.DetailPath)
		}
	}
	return paths
}

// writeSitemap emits the deduplicated detail paths of everything rendered.
func writeSitemap(outputDir, webURL string, paths []string) error {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")

	seen := map[string]struct{}{}
	for _, path := range paths {
		if _, dup := seen[path]; dup {
			continue
		}
		seen[path] = struct{}{}
		b.WriteString("  <url><loc>" + webURL + path + "</loc></url>\n")
	}

	b.WriteString("</urlset>\n")

	//nolint:mnd //standard file mode
	return os.WriteFile(filepath.Join(outputDir, "sitemap.xml"), []byte(b.String()), 0o644)
}
