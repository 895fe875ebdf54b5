package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/RealZimboGuy/wkfport/pkg/wkfport/domain"
)

type MetaJsonModelRepository struct {
	db *sql.DB
}

func NewMetaJsonModelRepository(db *sql.DB) *MetaJsonModelRepository {
	return &MetaJsonModelRepository{db: db}
}

// FindByName fetches a dynamic model by its unique name. A missing model is (nil, nil).
func (r *MetaJsonModelRepository) FindByName(ctx context.Context, name string) (*domain.MetaJsonModel, error) {
	query := `
		SELECT id, name, is_real
		FROM meta_json_model WHERE name = ` + placeholder(1) + `
	`
	var m domain.MetaJsonModel
	err := r.db.QueryRowContext(ctx, query, name).Scan(&m.ID, &m.Name, &m.IsReal)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
