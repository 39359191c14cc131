package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ayushgupta5924/quickbucks/config"
	"github.com/ayushgupta5924/quickbucks/pkg/log"
	"github.com/ayushgupta5924/quickbucks/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure
	cfg        *config.Config
	postgresDB *sql.DB
	jwtManager scope.Manager
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger     log.Logger
	Config     *config.Config
	PostgresDB *sql.DB
	JWTManager scope.Manager
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Config.HTTPServer.Mode)

	srv := &HTTPServer{
		l:           cfg.Logger,
		gin:         gin.New(),
		port:        cfg.Config.HTTPServer.Port,
		mode:        cfg.Config.HTTPServer.Mode,
		environment: cfg.Config.Environment.Name,
		cfg:         cfg.Config,
		postgresDB:  cfg.PostgresDB,
		jwtManager:  cfg.JWTManager,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	return nil
}
