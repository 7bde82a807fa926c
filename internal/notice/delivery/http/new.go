package http

import (
	"github.com/gin-gonic/gin"

	"notice-calendar/internal/notice"
	"notice-calendar/pkg/log"
)

// Handler is the public interface for the notice HTTP delivery layer.
type Handler interface {
	Convert(c *gin.Context)
	Analyze(c *gin.Context)
	Schedule(c *gin.Context)
}

type handler struct {
	l             log.Logger
	uc            notice.UseCase
	maxImageBytes int64
}

// New creates a new HTTP handler for the notice domain. maxImageBytes caps
// the size of uploaded notice photos.
func New(l log.Logger, uc notice.UseCase, maxImageBytes int64) *handler {
	return &handler{
		l:             l,
		uc:            uc,
		maxImageBytes: maxImageBytes,
	}
}
