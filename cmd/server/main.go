package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/report-export-service/internal/config"
	"github.com/maxviazov/report-export-service/internal/handler"
	"github.com/maxviazov/report-export-service/internal/logger"
	"github.com/maxviazov/report-export-service/internal/pdf"
	"github.com/maxviazov/report-export-service/internal/render"
	"github.com/maxviazov/report-export-service/internal/repository"
	"github.com/maxviazov/report-export-service/internal/repository/postgres"
	"github.com/maxviazov/report-export-service/internal/service"
	"github.com/maxviazov/report-export-service/internal/spreadsheet"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the yaml config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	appLogger, closeLog, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	err = run(cfg, appLogger)
	if err != nil {
		appLogger.Error().Err(err).Msg("service stopped with error")
	}
	if cerr := closeLog(); cerr != nil {
		log.Printf("closing debug log: %v", cerr)
	}
	if err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Postgres.AutoMigrate {
		if err := repository.Migrate(ctx, cfg.Postgres.DSN(), appLogger); err != nil {
			return err
		}
	}

	repo, err := repository.New(ctx, cfg, &appLogger)
	if err != nil {
		return err
	}
	defer repo.Close()

	renderer, err := newRenderer(cfg.Report)
	if err != nil {
		return err
	}

	engine, closeEngine, err := newEngine(cfg.PDF, renderer, appLogger)
	if err != nil {
		return err
	}
	defer closeEngine()

	pool := repo.Pool()
	movies := postgres.NewMovieRepository(pool)
	templates := postgres.NewTemplateRepository(pool)

	svc := handler.Services{
		Reports: service.NewReportService(
			engine,
			spreadsheet.NewWriter(cfg.Spreadsheet.SheetName, cfg.Spreadsheet.ColWidth),
			movies,
			templates,
			cfg.Report,
			appLogger,
		),
		Movies:    service.NewMovieService(movies, appLogger),
		Templates: service.NewTemplateService(templates, postgres.NewTxManager(pool), appLogger),
	}

	if cfg.App.Env == "prod" || cfg.App.Env == "staging" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger(appLogger))
	handler.Register(r, postgres.NewPinger(pool), svc, handler.FileNames{Spreadsheet: cfg.Spreadsheet.FileName})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.App.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info().Str("addr", srv.Addr).Str("pdf_engine", cfg.PDF.Engine).Msg("🚀 Service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	appLogger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.App.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	appLogger.Info().Msg("✅ Service stopped")
	return nil
}

func newRenderer(cfg config.ReportConfig) (*render.Renderer, error) {
	var opts []render.Option
	if cfg.Stylesheet != "" {
		css, err := os.ReadFile(cfg.Stylesheet)
		if err != nil {
			return nil, fmt.Errorf("reading stylesheet: %w", err)
		}
		opts = append(opts, render.WithStylesheet(string(css)))
	}
	return render.New(opts...)
}

func pageConfig(cfg config.PDFConfig) (pdf.PageConfig, error) {
	size, err := pdf.PageSizeByName(cfg.Format)
	if err != nil {
		return pdf.PageConfig{}, err
	}
	return pdf.PageConfig{
		Size:            size,
		Landscape:       cfg.Landscape,
		Margin:          pdf.UniformMargin(cfg.Margin),
		Scale:           cfg.Scale,
		PrintBackground: cfg.PrintBackground,
	}, nil
}

// newEngine builds the configured PDF engine and the function releasing it.
func newEngine(cfg config.PDFConfig, renderer *render.Renderer, appLogger zerolog.Logger) (pdf.Engine, func(), error) {
	page, err := pageConfig(cfg)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Engine == "native" {
		return pdf.NewNativeEngine(page), func() {}, nil
	}

	opts := []pdf.Option{
		pdf.WithChromePath(cfg.ChromePath),
		pdf.WithTimeout(time.Duration(cfg.Timeout) * time.Second),
	}
	if cfg.NoSandbox {
		opts = append(opts, pdf.WithNoSandbox())
	}
	if cfg.AutoDownload {
		opts = append(opts, pdf.WithAutoDownload())
	}
	conv, err := pdf.NewConverter(opts...)
	if err != nil {
		return nil, nil, err
	}
	appLogger.Info().Str("chrome_path", cfg.ChromePath).Bool("auto_download", cfg.AutoDownload).Msg("browser started")
	return pdf.NewHTMLEngine(renderer, conv, page), func() {
		if err := conv.Close(); err != nil {
			appLogger.Warn().Err(err).Msg("closing browser")
		}
	}, nil
}
