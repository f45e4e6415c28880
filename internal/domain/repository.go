package domain

import "context"

// UserRepository defines access methods for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateProfile(ctx context.Context, id int64, in ProfileUpdate) (*User, error)
}

// CategoryRepository reads the seeded categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]Category, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// RequestRepository persists aid requests. Every mutating method is a single
// conditional statement; ok is false when the guard did not match.
type RequestRepository interface {
	Create(ctx context.Context, requesterID int64, f RequestFields) (int64, error)
	GetByID(ctx context.Context, id int64) (*RequestView, error)
	List(ctx context.Context, filter RequestFilter) ([]RequestView, error)
	// Update rewrites structural fields while the request still awaits a volunteer.
	Update(ctx context.Context, id, requesterID int64, f RequestFields) (ok bool, err error)
	// Assign binds volunteerID while the request awaits a volunteer and has none.
	Assign(ctx context.Context, id, volunteerID int64) (ok bool, err error)
	// SetStatus moves the request from status from to status to.
	SetStatus(ctx context.Context, id int64, from, to Status) (ok bool, err error)
}

// CommentRepository persists comments.
type CommentRepository interface {
	Create(ctx context.Context, requestID, userID int64, text string) (int64, error)
	ListByRequest(ctx context.Context, requestID int64) ([]CommentView, error)
}

// StatsRepository aggregates counters.
type StatsRepository interface {
	Summary(ctx context.Context) (*Stats, error)
}
