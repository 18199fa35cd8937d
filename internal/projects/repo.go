package projects

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Project is one showcased project row. Like gallery items, the preview
// image is stored inline as base64 text.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	RepoURL     string    `json:"repo_url"`
	DemoURL     string    `json:"demo_url"`
	TechStack   []string  `json:"tech_stack"`
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

func (r *Repo) List(ctx context.Context) ([]Project, error) {
	const q = `
select id, title, description, repo_url, demo_url, tech_stack, image_data, image_type, created_at
from projects
order by created_at desc;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	out := make([]Project, 0, 16)
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.RepoURL, &p.DemoURL,
			pq.Array(&p.TechStack), &p.ImageData, &p.ImageType, &p.CreatedAt); err != nil {
			return nil, err
		}
		if p.TechStack == nil {
			p.TechStack = []string{}
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) Create(ctx context.Context, p Project) (*Project, error) {
	const q = `
insert into projects (id, title, description, repo_url, demo_url, tech_stack, image_data, image_type)
values ($1, $2, $3, $4, $5, $6, $7, $8)
returning id, title, description, repo_url, demo_url, tech_stack, image_data, image_type, created_at;
`
	var out Project
	err := r.db.QueryRowContext(ctx, q, uuid.New().String(), p.Title, p.Description,
		p.RepoURL, p.DemoURL, pq.Array(p.TechStack), p.ImageData, p.ImageType).
		Scan(&out.ID, &out.Title, &out.Description, &out.RepoURL, &out.DemoURL,
			pq.Array(&out.TechStack), &out.ImageData, &out.ImageType, &out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	if out.TechStack == nil {
		out.TechStack = []string{}
	}
	return &out, nil
}

// Update replaces every editable field of the row. Returns nil when the id
// does not exist.
func (r *Repo) Update(ctx context.Context, id string, p Project) (*Project, error) {
	const q = `
update projects
set title = $2, description = $3, repo_url = $4, demo_url = $5, tech_stack = $6, image_data = $7, image_type = $8
where id = $1
returning id, title, description, repo_url, demo_url, tech_stack, image_data, image_type, created_at;
`
	var out Project
	err := r.db.QueryRowContext(ctx, q, id, p.Title, p.Description,
		p.RepoURL, p.DemoURL, pq.Array(p.TechStack), p.ImageData, p.ImageType).
		Scan(&out.ID, &out.Title, &out.Description, &out.RepoURL, &out.DemoURL,
			pq.Array(&out.TechStack), &out.ImageData, &out.ImageType, &out.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	if out.TechStack == nil {
		out.TechStack = []string{}
	}
	return &out, nil
}

func (r *Repo) Delete(ctx context.Context, id string) (bool, error) {
	const q = `
delete from projects
where id = $1;
`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
