package repo

import (
	"context"

	"aidhub/internal/domain"
	"aidhub/internal/infra"
	"aidhub/internal/sqlinline"
)

// CategoryRepositoryPG reads the seeded categories table.
type CategoryRepositoryPG struct {
	sql infra.SQLExecutor
}

func NewCategoryRepository(sql infra.SQLExecutor) *CategoryRepositoryPG {
	return &CategoryRepositoryPG{sql: sql}
}

func (r *CategoryRepositoryPG) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListCategories)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	items := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, translate(err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err)
	}
	return items, nil
}

func (r *CategoryRepositoryPG) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	if err := r.sql.QueryRow(ctx, sqlinline.QCategoryExists, id).Scan(&ok); err != nil {
		return false, translate(err)
	}
	return ok, nil
}

var _ domain.CategoryRepository = (*CategoryRepositoryPG)(nil)
