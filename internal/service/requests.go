package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"aidhub/internal/domain"
	"aidhub/internal/metrics"
)

// RequestService owns the aid request lifecycle.
type RequestService struct {
	requests   domain.RequestRepository
	categories domain.CategoryRepository
	comments   domain.CommentRepository
	lifecycle  domain.Lifecycle
	logger     zerolog.Logger
}

func NewRequestService(requests domain.RequestRepository, categories domain.CategoryRepository, comments domain.CommentRepository, lifecycle domain.Lifecycle, logger zerolog.Logger) *RequestService {
	return &RequestService{
		requests:   requests,
		categories: categories,
		comments:   comments,
		lifecycle:  lifecycle,
		logger:     logger,
	}
}

// Create stores a new request owned by actor. It starts AwaitingVolunteer.
func (s *RequestService) Create(ctx context.Context, actor domain.Actor, in domain.RequestInput) (*domain.RequestView, error) {
	if actor.Role != domain.RoleRequester {
		return nil, fmt.Errorf("%w: only requesters can create requests", domain.ErrForbidden)
	}
	fields, err := s.validate(ctx, in)
	if err != nil {
		return nil, err
	}
	id, err := s.requests.Create(ctx, actor.ID, fields)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	s.logger.Info().Int64("request_id", id).Int64("requester_id", actor.ID).Msg("aid request created")
	return s.requests.GetByID(ctx, id)
}

// List returns requests matching filter, newest first.
func (s *RequestService) List(ctx context.Context, filter domain.RequestFilter) ([]domain.RequestView, error) {
	return s.requests.List(ctx, filter)
}

// Mine lists the requests owned by actor.
func (s *RequestService) Mine(ctx context.Context, actor domain.Actor) ([]domain.RequestView, error) {
	if actor.Role != domain.RoleRequester {
		return nil, fmt.Errorf("%w: only requesters own requests", domain.ErrForbidden)
	}
	return s.requests.List(ctx, domain.RequestFilter{RequesterID: actor.ID})
}

// Assigned lists the requests assigned to actor.
func (s *RequestService) Assigned(ctx context.Context, actor domain.Actor) ([]domain.RequestView, error) {
	if actor.Role != domain.RoleVolunteer {
		return nil, fmt.Errorf("%w: only volunteers have assigned requests", domain.ErrForbidden)
	}
	return s.requests.List(ctx, domain.RequestFilter{VolunteerID: actor.ID})
}

// Get returns one request with its comments in creation order.
func (s *RequestService) Get(ctx context.Context, id int64) (*domain.RequestView, []domain.CommentView, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	comments, err := s.comments.ListByRequest(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list comments: %w", err)
	}
	return req, comments, nil
}

// Update rewrites the structural fields of a request still awaiting a volunteer.
func (s *RequestService) Update(ctx context.Context, actor domain.Actor, id int64, in domain.RequestInput) (*domain.RequestView, error) {
	current, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.lifecycle.CanEdit(actor, current.AidRequest); err != nil {
		return nil, err
	}
	fields, err := s.validate(ctx, in)
	if err != nil {
		return nil, err
	}
	ok, err := s.requests.Update(ctx, id, actor.ID, fields)
	if err != nil {
		return nil, fmt.Errorf("update request: %w", err)
	}
	if !ok {
		return nil, s.explainEdit(ctx, actor, id)
	}
	return s.requests.GetByID(ctx, id)
}

// Assign binds actor as the volunteer of a request awaiting one and moves it
// to InProgress. Concurrent callers race on a single conditional update; the
// losers get ErrAlreadyAssigned or ErrInvalidTransition.
func (s *RequestService) Assign(ctx context.Context, actor domain.Actor, id int64) (*domain.RequestView, error) {
	current, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.lifecycle.CanAssign(actor, current.AidRequest); err != nil {
		metrics.RecordAssignment(failureKind(err))
		return nil, err
	}
	ok, err := s.requests.Assign(ctx, id, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("assign request: %w", err)
	}
	if !ok {
		err := s.explainAssign(ctx, actor, id)
		metrics.RecordAssignment(failureKind(err))
		return nil, err
	}
	metrics.RecordAssignment("assigned")
	metrics.RecordTransition(string(domain.StatusAwaitingVolunteer), string(domain.StatusInProgress))
	s.logger.Info().Int64("request_id", id).Int64("volunteer_id", actor.ID).Msg("volunteer assigned")
	return s.requests.GetByID(ctx, id)
}

// ChangeStatus applies a lifecycle transition on behalf of actor.
func (s *RequestService) ChangeStatus(ctx context.Context, actor domain.Actor, id int64, to domain.Status) (*domain.RequestView, error) {
	current, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	from := current.Status
	if err := s.lifecycle.Transition(actor, current.AidRequest, to); err != nil {
		return nil, err
	}
	ok, err := s.requests.SetStatus(ctx, id, from, to)
	if err != nil {
		return nil, fmt.Errorf("set status: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: request changed status concurrently", domain.ErrInvalidTransition)
	}
	metrics.RecordTransition(string(from), string(to))
	s.logger.Info().
		Int64("request_id", id).
		Int64("actor_id", actor.ID).
		Str("from", string(from)).
		Str("to", string(to)).
		Msg("aid request status changed")
	return s.requests.GetByID(ctx, id)
}

func (s *RequestService) validate(ctx context.Context, in domain.RequestInput) (domain.RequestFields, error) {
	fields, err := in.Validate()
	if err != nil {
		return domain.RequestFields{}, err
	}
	exists, err := s.categories.Exists(ctx, fields.CategoryID)
	if err != nil {
		return domain.RequestFields{}, fmt.Errorf("check category: %w", err)
	}
	if !exists {
		return domain.RequestFields{}, fmt.Errorf("%w: category %d does not exist", domain.ErrValidation, fields.CategoryID)
	}
	return fields, nil
}

// explainEdit classifies a conditional edit that matched no row.
func (s *RequestService) explainEdit(ctx context.Context, actor domain.Actor, id int64) error {
	fresh, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.lifecycle.CanEdit(actor, fresh.AidRequest); err != nil {
		return err
	}
	return fmt.Errorf("%w: request changed concurrently", domain.ErrInvalidTransition)
}

// explainAssign classifies a conditional assignment that matched no row.
func (s *RequestService) explainAssign(ctx context.Context, actor domain.Actor, id int64) error {
	fresh, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.lifecycle.CanAssign(actor, fresh.AidRequest); err != nil {
		return err
	}
	return fmt.Errorf("%w: request was taken concurrently", domain.ErrAlreadyAssigned)
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrAlreadyAssigned):
		return "already_assigned"
	case errors.Is(err, domain.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
