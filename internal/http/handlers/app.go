package handlers

import (
	"context"

	"github.com/rs/zerolog"

	"aidhub/internal/domain"
	"aidhub/internal/service"
)

// Pinger reports whether the data store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// App carries the dependencies shared by all HTTP handlers.
type App struct {
	Auth       *service.AuthService
	Requests   *service.RequestService
	Comments   *service.CommentService
	Categories domain.CategoryRepository
	Stats      domain.StatsRepository
	DB         Pinger
	Logger     zerolog.Logger
	// Production hides internal error details from 5xx responses.
	Production bool
}
