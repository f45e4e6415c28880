package repo

import (
	"context"

	"aidhub/internal/domain"
	"aidhub/internal/infra"
	"aidhub/internal/sqlinline"
)

// CommentRepositoryPG implements domain.CommentRepository backed by PostgreSQL.
type CommentRepositoryPG struct {
	sql infra.SQLExecutor
}

func NewCommentRepository(sql infra.SQLExecutor) *CommentRepositoryPG {
	return &CommentRepositoryPG{sql: sql}
}

func (r *CommentRepositoryPG) Create(ctx context.Context, requestID, userID int64, text string) (int64, error) {
	var id int64
	if err := r.sql.QueryRow(ctx, sqlinline.QInsertComment, requestID, userID, text).Scan(&id); err != nil {
		return 0, translate(err)
	}
	return id, nil
}

// ListByRequest returns the comments of a request, oldest first.
func (r *CommentRepositoryPG) ListByRequest(ctx context.Context, requestID int64) ([]domain.CommentView, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListCommentsByRequest, requestID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	items := []domain.CommentView{}
	for rows.Next() {
		var c domain.CommentView
		var role string
		if err := rows.Scan(&c.ID, &c.RequestID, &c.UserID, &c.Text, &c.CreatedAt, &c.UserName, &role); err != nil {
			return nil, translate(err)
		}
		c.UserRole = domain.Role(role)
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err)
	}
	return items, nil
}

var _ domain.CommentRepository = (*CommentRepositoryPG)(nil)
