package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	_ "fitness_tracker/docs"
	"fitness_tracker/internal/config"
	"fitness_tracker/internal/handlers"
	"fitness_tracker/internal/logger"
	"fitness_tracker/internal/models"
	"fitness_tracker/internal/notify"
	"fitness_tracker/internal/repository"
	"fitness_tracker/internal/repository/db"
	"fitness_tracker/internal/scheduler"
	"fitness_tracker/internal/security"
	"fitness_tracker/internal/server"
	"fitness_tracker/internal/service"

	"golang.org/x/sync/errgroup"
)

// @title           WellStride Auth API
// @version         1.0
// @description     Authentication and account API for the WellStride fitness tracker.
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// load configs/config.yml
	cfg, err := config.Load("configs")
	if err != nil {
		logger.Get(logger.InfoLevel, logger.FormatConsole).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.Log.Level, cfg.Log.Format)
	log.Infow("config loaded", "config", cfg.String())

	// open DB
	conn, err := openDB(cfg.DB, log)
	if err != nil {
		log.Fatalw("failed to init database", "driver", cfg.DB.Driver, "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close database", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(conn, db.Dialect(cfg.DB.Driver))
	services := service.NewService(repos, service.Deps{
		Tokens:    service.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Expiration),
		Notifier:  notify.NewMailer(cfg.SMTP, log),
		Providers: providers(cfg.OAuth2, log),
		StateTTL:  cfg.OAuth2.StateTTL,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := services.Seed(ctx, seedUsers(cfg.Seed)); err != nil {
		log.Fatalw("failed to seed accounts", "err", err)
	}

	jobs := scheduler.New(services, log)
	if err := jobs.SchedulePurge(cfg.OAuth2.PurgeSchedule); err != nil {
		log.Fatalw("failed to schedule purge", "err", err)
	}

	apiHandler := handlers.NewHandler(services, log, handlers.Settings{
		Policy:       security.DefaultPolicy(),
		CORS:         cfg.CORS,
		JWTCookie:    cfg.JWT.CookieName,
		CookieSecure: cfg.JWT.CookieSecure,
		CookieTTL:    cfg.JWT.Expiration,
		FrontendURL:  cfg.Frontend.URL,
		StaticDir:    cfg.Static.Dir,
	})
	srv := server.New(cfg.Server)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infow("http server listening", "addr", cfg.Addr())
		return srv.Run(cfg.Port, apiHandler.InitRoutes())
	})
	g.Go(func() error {
		jobs.Start()
		<-gctx.Done()
		return shutdown(srv, jobs, cfg.Server, log)
	})

	if err := g.Wait(); err != nil {
		log.Errorw("server stopped with error", "err", err)
		os.Exit(1)
	}
	log.Infow("server stopped")
}

// openDB opens the configured database and makes sure the schema exists.
func openDB(cfg config.DBConfig, log *logger.Logger) (*sql.DB, error) {
	log.Infow("opening database", "driver", cfg.Driver)
	return db.InitDB(db.Dialect(cfg.Driver), cfg.DSN)
}

func providers(cfg config.OAuth2Config, log *logger.Logger) []service.Provider {
	g := cfg.Google
	if !g.Enabled() {
		log.Infow("google login disabled: oauth2.google client credentials not set")
		return nil
	}
	return []service.Provider{service.NewGoogleProvider(g.ClientID, g.ClientSecret, g.RedirectURL, g.Scopes)}
}

func seedUsers(cfg config.SeedConfig) []service.SeedUser {
	out := make([]service.SeedUser, 0, len(cfg.Users))
	for _, u := range cfg.Users {
		out = append(out, service.SeedUser{
			Username: u.Username,
			Email:    u.Email,
			Password: u.Password,
			Role:     models.ERole(u.Role),
		})
	}
	return out
}

// shutdown stops accepting requests, lets in-flight ones finish, then stops the scheduler.
func shutdown(srv *server.Server, jobs *scheduler.Scheduler, cfg config.ServerConfig, log *logger.Logger) error {
	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
		return err
	}
	if err := jobs.Stop(ctx); err != nil {
		log.Errorw("scheduler did not stop in time", "err", err)
		return err
	}
	return nil
}
