package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"notice-calendar/internal/middleware"
	noticeHTTP "notice-calendar/internal/notice/delivery/http"
	"notice-calendar/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Notice domain
	noticeHandler noticeHTTP.Handler
	middleware    middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	NoticeHandler noticeHTTP.Handler
	Middleware    middleware.Middleware
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		noticeHandler: cfg.NoticeHandler,
		middleware:    cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.noticeHandler == nil {
		return errors.New("notice handler is required")
	}
	return nil
}
