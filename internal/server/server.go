package server

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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/yigit/alumnet/internal/bootstrap"
	"github.com/yigit/alumnet/internal/config"
	"github.com/yigit/alumnet/internal/pkg/helpers"
)

// Server holds the state for the HTTP server.
type Server struct {
	config *config.Config
	router *gin.Engine
	dbPool *pgxpool.Pool
	redis  *redis.Client
	logger zerolog.Logger
	http   *http.Server
}

// NewServer creates and initializes a new server instance by calling bootstrap functions.
func NewServer(ctx context.Context, configPath string) (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	dbPool, err := bootstrap.SetupDatabase(ctx, cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	blacklist, redisClient, err := bootstrap.SetupTokenBlacklist(ctx, cfg, lgr)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to setup token blacklist: %w", err)
	}

	deps := bootstrap.BuildDependencies(cfg, dbPool, blacklist, redisClient, lgr)

	router, err := bootstrap.SetupRouter(cfg, deps, lgr)
	if err != nil {
		dbPool.Close()
		if redisClient != nil {
			_ = redisClient.Close()
		}
		return nil, fmt.Errorf("failed to setup router: %w", err)
	}

	return &Server{
		config: cfg,
		router: router,
		dbPool: dbPool,
		redis:  redisClient,
		logger: lgr,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown.
func (s *Server) Run() error {
	s.logger.Info().Str("port", s.config.Server.Port).Str("mode", s.config.Server.Mode).Msg("Starting server...")

	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  helpers.ParseDuration(s.config.Server.ReadTimeout, 10*time.Second),
		WriteTimeout: helpers.ParseDuration(s.config.Server.WriteTimeout, 10*time.Second),
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			s.closeStores()
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the server and closes resources.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var shutdownErr error
	if s.http != nil {
		s.logger.Info().Msg("Shutting down HTTP server...")
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
			shutdownErr = err
		} else {
			s.logger.Info().Msg("HTTP server gracefully stopped.")
		}
	}

	if err := s.closeStores(); err != nil {
		shutdownErr = errors.Join(shutdownErr, err)
	}

	s.logger.Info().Msg("Server shutdown process complete.")
	if shutdownErr != nil {
		return fmt.Errorf("server shutdown completed with errors: %w", shutdownErr)
	}
	return nil
}

func (s *Server) closeStores() error {
	var err error
	if s.redis != nil {
		s.logger.Info().Msg("Closing redis client...")
		if cerr := s.redis.Close(); cerr != nil {
			s.logger.Error().Err(cerr).Msg("Redis close error")
			err = cerr
		}
		s.redis = nil
	}
	if s.dbPool != nil {
		s.logger.Info().Msg("Closing database connection pool...")
		s.dbPool.Close()
		s.dbPool = nil
	}
	return err
}
