package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"aidhub/internal/domain"
)

// CommentService appends and lists comments on aid requests.
type CommentService struct {
	requests  domain.RequestRepository
	comments  domain.CommentRepository
	lifecycle domain.Lifecycle
	logger    zerolog.Logger
}

func NewCommentService(requests domain.RequestRepository, comments domain.CommentRepository, lifecycle domain.Lifecycle, logger zerolog.Logger) *CommentService {
	return &CommentService{requests: requests, comments: comments, lifecycle: lifecycle, logger: logger}
}

// Add stores a comment and returns the full ordered thread.
func (s *CommentService) Add(ctx context.Context, actor domain.Actor, requestID int64, text string) ([]domain.CommentView, error) {
	text, err := domain.NormalizeCommentText(text)
	if err != nil {
		return nil, err
	}
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if err := s.lifecycle.CanComment(actor, req.AidRequest); err != nil {
		return nil, err
	}
	id, err := s.comments.Create(ctx, requestID, actor.ID, text)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	s.logger.Debug().Int64("comment_id", id).Int64("request_id", requestID).Int64("user_id", actor.ID).Msg("comment added")
	return s.comments.ListByRequest(ctx, requestID)
}

// List returns the comments of an existing request.
func (s *CommentService) List(ctx context.Context, requestID int64) ([]domain.CommentView, error) {
	if _, err := s.requests.GetByID(ctx, requestID); err != nil {
		return nil, err
	}
	return s.comments.ListByRequest(ctx, requestID)
}
