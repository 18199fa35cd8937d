package gallery

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Item is one graphic-design gallery entry. The image is stored inline as
// base64 text next to its MIME type.
type Item struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageData   string    `json:"image_data"`
	ImageType   string    `json:"image_type"`
	CreatedAt   time.Time `json:"created_at"`
}

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) List(ctx context.Context) ([]Item, error) {
	const q = `
select id, title, description, image_data, image_type, created_at
from gallery
order by created_at desc;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list gallery: %w", err)
	}
	defer rows.Close()

	out := make([]Item, 0, 16)
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Title, &it.Description, &it.ImageData, &it.ImageType, &it.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *Repo) Create(ctx context.Context, title, description, imageData, imageType string) (*Item, error) {
	const q = `
insert into gallery (id, title, description, image_data, image_type)
values ($1, $2, $3, $4, $5)
returning id, title, description, image_data, image_type, created_at;
`
	var it Item
	err := r.db.QueryRowContext(ctx, q, uuid.New().String(), title, description, imageData, imageType).
		Scan(&it.ID, &it.Title, &it.Description, &it.ImageData, &it.ImageType, &it.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create gallery item: %w", err)
	}
	return &it, nil
}

// Update replaces every editable field of the row.
func (r *Repo) Update(ctx context.Context, id, title, description, imageData, imageType string) (*Item, error) {
	const q = `
update gallery
set title = $2, description = $3, image_data = $4, image_type = $5
where id = $1
returning id, title, description, image_data, image_type, created_at;
`
	var it Item
	err := r.db.QueryRowContext(ctx, q, id, title, description, imageData, imageType).
		Scan(&it.ID, &it.Title, &it.Description, &it.ImageData, &it.ImageType, &it.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update gallery item: %w", err)
	}
	return &it, nil
}

func (r *Repo) Delete(ctx context.Context, id string) (bool, error) {
	const q = `
delete from gallery
where id = $1;
`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, fmt.Errorf("delete gallery item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
