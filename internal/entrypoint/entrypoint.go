package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/learningmate/examstore/internal/config"
	"github.com/learningmate/examstore/internal/database"
	"github.com/learningmate/examstore/internal/database/exams"
	"github.com/learningmate/examstore/internal/database/topics"
	"github.com/learningmate/examstore/internal/demo"
	"github.com/learningmate/examstore/internal/entities"
	http_controllers "github.com/learningmate/examstore/internal/http"
	"github.com/learningmate/examstore/internal/logger"
	"github.com/learningmate/examstore/internal/services"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// App holds the wired data-access and service layers.
type App struct {
	Database *database.Database
	Exams    *services.ExamService
	Topics   map[entities.Skill]*services.TopicService
}

// NewApp opens the database and builds one topic service per skill over it.
func NewApp(cfg *config.Config, log zerolog.Logger) (*App, error) {
	db, err := database.NewDatabase(cfg.Database.Path,
		database.WithLogLevel(logger.GormLogLevel(cfg.Database.LogLevel)),
		database.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	examRepo := exams.NewRepository(db, log)
	app := &App{
		Database: db,
		Exams:    services.NewExamService(examRepo, log),
		Topics:   make(map[entities.Skill]*services.TopicService, len(entities.Skills)),
	}
	for _, skill := range entities.Skills {
		app.Topics[skill] = services.NewTopicService(topics.NewRepository(db, skill, log), examRepo, log)
	}
	return app, nil
}

// Close releases the database.
func (a *App) Close() error {
	return a.Database.Close()
}

// DemoTopicCreators returns the topic services in skill order for seeding.
func (a *App) DemoTopicCreators() []demo.TopicCreator {
	out := make([]demo.TopicCreator, 0, len(a.Topics))
	for _, skill := range entities.Skills {
		if svc, ok := a.Topics[skill]; ok {
			out = append(out, svc)
		}
	}
	return out
}

func (a *App) topicServices() []http_controllers.TopicsService {
	out := make([]http_controllers.TopicsService, 0, len(a.Topics))
	for _, skill := range entities.Skills {
		if svc, ok := a.Topics[skill]; ok {
			out = append(out, svc)
		}
	}
	return out
}

func Serve(router *gin.Engine, cfg *config.Config, log zerolog.Logger, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("starting server")
		// service connections
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	// Graceful shutdown
	// kill (no param) default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall.SIGKILL but can't be caught, so don't need to add it
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Dur("timeout", timeout).Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	// Release resources once no request can use them
	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Info().Msg("server exiting")
}

func Run(cfg *config.Config, version string) {
	log := logger.New(cfg.Log)
	log.Info().Str("version", version).Msg("starting examstore")

	gin.SetMode(gin.ReleaseMode)

	app, err := NewApp(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize application")
	}

	if cfg.Demo.Enabled {
		log.Warn().Msg("demo mode enabled, write operations will be blocked")
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:       app.Database,
		Exams:          app.Exams,
		Topics:         app.topicServices(),
		DemoMiddleware: demo.NewMiddleware(cfg.Demo.Enabled),
		Logger:         log,
		Version:        version,
	})

	onShutdown := func(ctx context.Context) {
		if err := app.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}

	Serve(router, cfg, log, onShutdown)
}
