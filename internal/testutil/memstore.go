// Package testutil provides in-memory repositories for tests. They honour the
// same conditional-update guards as the SQL statements.
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"aidhub/internal/domain"
)

// Store is an in-memory backing for every domain repository.
type Store struct {
	mu         sync.Mutex
	nextID     int64
	users      map[int64]*domain.User
	categories map[int64]domain.Category
	requests   map[int64]*domain.AidRequest
	comments   []domain.Comment
	now        time.Time

	// BeforeAssign, when set, runs at the start of every Assign call.
	BeforeAssign func()
}

func NewStore() *Store {
	s := &Store{
		users:      map[int64]*domain.User{},
		categories: map[int64]domain.Category{},
		requests:   map[int64]*domain.AidRequest{},
		now:        time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	for i, c := range domain.DefaultCategories {
		c.ID = int64(i + 1)
		s.categories[c.ID] = c
	}
	return s
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Store) tick() time.Time {
	s.now = s.now.Add(time.Second)
	return s.now
}

// AddUser stores an account and returns its actor.
func (s *Store) AddUser(name string, role domain.Role) domain.Actor {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &domain.User{ID: s.id(), Name: name, Email: strings.ToLower(name) + "@example.org", Role: role}
	s.users[u.ID] = u
	return u.Actor()
}

// users

type Users struct{ *Store }

func (s Users) Create(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return domain.ErrConflict
		}
	}
	user.ID = s.id()
	user.CreatedAt = s.tick()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s Users) GetByID(_ context.Context, id int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s Users) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == strings.ToLower(email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s Users) UpdateProfile(_ context.Context, id int64, in domain.ProfileUpdate) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u.Name, u.Phone, u.Address, u.City, u.Region = in.Name, in.Phone, in.Address, in.City, in.Region
	u.UpdatedAt = s.tick()
	cp := *u
	return &cp, nil
}

// categories

type Categories struct{ *Store }

func (s Categories) List(context.Context) ([]domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s Categories) Exists(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.categories[id]
	return ok, nil
}

// requests

type Requests struct{ *Store }

func (s Requests) Create(_ context.Context, requesterID int64, f domain.RequestFields) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.tick()
	r := &domain.AidRequest{
		ID:          s.id(),
		CategoryID:  f.CategoryID,
		RequesterID: requesterID,
		Title:       f.Title,
		Description: f.Description,
		Budget:      f.Budget,
		Priority:    f.Priority,
		City:        f.City,
		Region:      f.Region,
		Status:      domain.StatusAwaitingVolunteer,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.requests[r.ID] = r
	return r.ID, nil
}

func (s Requests) view(r *domain.AidRequest) domain.RequestView {
	v := domain.RequestView{AidRequest: *r}
	v.CategoryName = s.categories[r.CategoryID].Name
	if u, ok := s.users[r.RequesterID]; ok {
		v.RequesterName = u.Name
		v.RequesterEmail = u.Email
	}
	if r.VolunteerID != nil {
		if u, ok := s.users[*r.VolunteerID]; ok {
			name, email := u.Name, u.Email
			v.VolunteerName, v.VolunteerEmail = &name, &email
		}
	}
	return v
}

func (s Requests) GetByID(_ context.Context, id int64) (*domain.RequestView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	v := s.view(r)
	return &v, nil
}

func (s Requests) List(_ context.Context, f domain.RequestFilter) ([]domain.RequestView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.RequestView
	for _, r := range s.requests {
		switch {
		case f.CategoryID != 0 && r.CategoryID != f.CategoryID,
			f.Status != "" && r.Status != f.Status,
			f.Region != "" && r.Region != f.Region,
			f.RequesterID != 0 && r.RequesterID != f.RequesterID,
			f.VolunteerID != 0 && !r.AssignedTo(f.VolunteerID):
			continue
		}
		out = append(out, s.view(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s Requests) Update(_ context.Context, id, requesterID int64, f domain.RequestFields) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[id]
	if !ok || r.RequesterID != requesterID || r.Status != domain.StatusAwaitingVolunteer {
		return false, nil
	}
	r.CategoryID, r.Title, r.Description = f.CategoryID, f.Title, f.Description
	r.Budget, r.Priority, r.City, r.Region = f.Budget, f.Priority, f.City, f.Region
	r.UpdatedAt = s.tick()
	return true, nil
}

func (s Requests) Assign(_ context.Context, id, volunteerID int64) (bool, error) {
	if s.BeforeAssign != nil {
		s.BeforeAssign()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[id]
	if !ok || r.Status != domain.StatusAwaitingVolunteer || r.VolunteerID != nil {
		return false, nil
	}
	v := volunteerID
	r.VolunteerID = &v
	r.Status = domain.StatusInProgress
	r.UpdatedAt = s.tick()
	return true, nil
}

func (s Requests) SetStatus(_ context.Context, id int64, from, to domain.Status) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[id]
	if !ok || r.Status != from {
		return false, nil
	}
	r.Status = to
	r.UpdatedAt = s.tick()
	return true, nil
}

// comments

type Comments struct{ *Store }

func (s Comments) Create(_ context.Context, requestID, userID int64, text string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := domain.Comment{ID: s.id(), RequestID: requestID, UserID: userID, Text: text, CreatedAt: s.tick()}
	s.comments = append(s.comments, c)
	return c.ID, nil
}

func (s Comments) ListByRequest(_ context.Context, requestID int64) ([]domain.CommentView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.CommentView
	for _, c := range s.comments {
		if c.RequestID != requestID {
			continue
		}
		v := domain.CommentView{Comment: c}
		if u, ok := s.users[c.UserID]; ok {
			v.UserName, v.UserRole = u.Name, u.Role
		}
		out = append(out, v)
	}
	return out, nil
}

// stats

type Stats struct{ *Store }

func (s Stats) Summary(context.Context) (*domain.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := &domain.Stats{}
	for _, u := range s.users {
		switch u.Role {
		case domain.RoleRequester:
			out.Requesters++
		case domain.RoleVolunteer:
			out.Volunteers++
		}
	}
	for _, r := range s.requests {
		switch r.Status {
		case domain.StatusAwaitingVolunteer:
			out.AwaitingVolunteer++
		case domain.StatusInProgress:
			out.InProgress++
		case domain.StatusDone:
			out.Done++
		case domain.StatusCancelled:
			out.Cancelled++
		}
	}
	return out, nil
}
