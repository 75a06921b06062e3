package app

import (
	"fmt"
	"net/http"

	"wedding-rsvp-go/internal/config"
	"wedding-rsvp-go/internal/db"
	"wedding-rsvp-go/internal/domain/guest"
	"wedding-rsvp-go/internal/domain/rsvp"
	"wedding-rsvp-go/internal/domain/wedding"
	"wedding-rsvp-go/internal/messaging"
	"wedding-rsvp-go/internal/repository/inmemory"
	guestrepo "wedding-rsvp-go/internal/repository/postgres/guest"
	weddingrepo "wedding-rsvp-go/internal/repository/postgres/wedding"
	"wedding-rsvp-go/internal/transport/httpserver"
	"wedding-rsvp-go/internal/transport/httpserver/handler"
	"wedding-rsvp-go/pkg/logger"

	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing store", "driver", cfg.Store.Driver)
	weddingRepo, guestRepo, dbConn, err := newStore(cfg)
	if err != nil {
		return nil, err
	}

	weddingSvc := wedding.NewService(weddingRepo, cfg.PublicBaseURL)
	guestSvc := guest.NewService(guestRepo, messaging.NewSimulatedSender(log))
	rsvpSvc := rsvp.NewService(weddingSvc, guestSvc)

	log.Info("app: initializing router")
	handlers := handler.New(weddingSvc, guestSvc, rsvpSvc, log)
	router := httpserver.NewRouter(cfg, handlers)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func newStore(cfg config.Config) (wedding.Repository, guest.Repository, *gorm.DB, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		store := inmemory.NewStore()
		return store, store, nil, nil

	case config.StoreDriverPostgres:
		dbConn, err := db.NewPostgres(cfg.DB)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := db.Migrate(dbConn); err != nil {
			return nil, nil, nil, err
		}
		return weddingrepo.NewPostgres(dbConn), guestrepo.NewPostgres(dbConn), dbConn, nil

	case config.StoreDriverSQLite:
		dbConn, err := db.NewSQLite(cfg.Store.SQLitePath)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := db.Migrate(dbConn); err != nil {
			return nil, nil, nil, err
		}
		return weddingrepo.NewPostgres(dbConn), guestrepo.NewPostgres(dbConn), dbConn, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
