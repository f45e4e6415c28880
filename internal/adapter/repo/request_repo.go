package repo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"aidhub/internal/domain"
	"aidhub/internal/infra"
	"aidhub/internal/sqlinline"
)

// RequestRepositoryPG implements domain.RequestRepository backed by PostgreSQL.
type RequestRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewRequestRepository creates a new RequestRepositoryPG.
func NewRequestRepository(sql infra.SQLExecutor) *RequestRepositoryPG {
	return &RequestRepositoryPG{sql: sql}
}

// Create inserts a request owned by requesterID. Status and timestamps take
// their column defaults.
func (r *RequestRepositoryPG) Create(ctx context.Context, requesterID int64, f domain.RequestFields) (int64, error) {
	var id int64
	row := r.sql.QueryRow(ctx, sqlinline.QInsertRequest,
		f.CategoryID, requesterID, f.Title, f.Description, f.Budget, string(f.Priority), f.City, f.Region)
	if err := row.Scan(&id); err != nil {
		return 0, translate(err)
	}
	return id, nil
}

// GetByID loads the request with its joined names and emails.
func (r *RequestRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.RequestView, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectRequestByID, id)
	var v domain.RequestView
	var priority, status string
	var requesterEmail string
	err := row.Scan(
		&v.ID, &v.CategoryID, &v.RequesterID, &v.VolunteerID, &v.Title, &v.Description,
		&v.Budget, &priority, &v.City, &v.Region, &status, &v.CreatedAt, &v.UpdatedAt,
		&v.CategoryName, &v.RequesterName, &requesterEmail, &v.VolunteerName, &v.VolunteerEmail,
	)
	if err != nil {
		return nil, translate(err)
	}
	v.Priority = domain.Priority(priority)
	v.Status = domain.Status(status)
	v.RequesterEmail = requesterEmail
	return &v, nil
}

// List returns requests matching filter, newest first.
func (r *RequestRepositoryPG) List(ctx context.Context, filter domain.RequestFilter) ([]domain.RequestView, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListRequests,
		nullableID(filter.CategoryID),
		nullableText(string(filter.Status)),
		nullableText(filter.Region),
		nullableID(filter.RequesterID),
		nullableID(filter.VolunteerID),
	)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	items := []domain.RequestView{}
	for rows.Next() {
		v, err := scanListedRequest(rows)
		if err != nil {
			return nil, translate(err)
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err)
	}
	return items, nil
}

func scanListedRequest(rows pgx.Rows) (domain.RequestView, error) {
	var v domain.RequestView
	var priority, status string
	err := rows.Scan(
		&v.ID, &v.CategoryID, &v.RequesterID, &v.VolunteerID, &v.Title, &v.Description,
		&v.Budget, &priority, &v.City, &v.Region, &status, &v.CreatedAt, &v.UpdatedAt,
		&v.CategoryName, &v.RequesterName, &v.VolunteerName,
	)
	v.Priority = domain.Priority(priority)
	v.Status = domain.Status(status)
	return v, err
}

// Update rewrites the structural fields. It only matches while the request is
// owned by requesterID and still awaits a volunteer.
func (r *RequestRepositoryPG) Update(ctx context.Context, id, requesterID int64, f domain.RequestFields) (bool, error) {
	tag, err := r.sql.Exec(ctx, sqlinline.QUpdateRequest,
		id, requesterID, f.CategoryID, f.Title, f.Description, f.Budget, string(f.Priority), f.City, f.Region)
	if err != nil {
		return false, translate(err)
	}
	return tag.RowsAffected() == 1, nil
}

// Assign binds volunteerID in one conditional statement; of any number of
// concurrent callers at most one observes ok == true.
func (r *RequestRepositoryPG) Assign(ctx context.Context, id, volunteerID int64) (bool, error) {
	tag, err := r.sql.Exec(ctx, sqlinline.QAssignVolunteer, id, volunteerID)
	if err != nil {
		return false, translate(err)
	}
	return tag.RowsAffected() == 1, nil
}

// SetStatus moves the request from one status to another if it is still in from.
func (r *RequestRepositoryPG) SetStatus(ctx context.Context, id int64, from, to domain.Status) (bool, error) {
	tag, err := r.sql.Exec(ctx, sqlinline.QSetRequestStatus, id, string(from), string(to))
	if err != nil {
		return false, translate(err)
	}
	return tag.RowsAffected() == 1, nil
}

var _ domain.RequestRepository = (*RequestRepositoryPG)(nil)
