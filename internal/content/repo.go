package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNoContent means the version log is empty (fresh database).
var ErrNoContent = errors.New("no portfolio content stored")

// DB is the subset of pgxpool.Pool the repo uses; repo tests substitute a
// mock pool.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repo stores the aggregate as an append-only version log: every save
// inserts a full copy and the newest row is authoritative. Older rows are
// only ever read to seed the next copy, and are trimmed by Prune.
type Repo struct {
	db DB
}

func NewRepo(db DB) *Repo {
	return &Repo{db: db}
}

// Latest returns the newest stored aggregate.
func (r *Repo) Latest(ctx context.Context) (PortfolioData, error) {
	const q = `
select data
from portfolio_data
order by updated_at desc, id desc
limit 1;
`
	var raw []byte
	err := r.db.QueryRow(ctx, q).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return PortfolioData{}, ErrNoContent
	}
	if err != nil {
		return PortfolioData{}, fmt.Errorf("fetch latest content: %w", err)
	}

	var data PortfolioData
	if err := json.Unmarshal(raw, &data); err != nil {
		return PortfolioData{}, fmt.Errorf("decode stored content: %w", err)
	}
	return data, nil
}

// Bootstrap returns the latest aggregate, seeding the defaults as version 1
// when the log is empty. Backend errors are returned, not hidden; the
// default fallback exists for first-run bootstrap only.
func (r *Repo) Bootstrap(ctx context.Context) (PortfolioData, error) {
	data, err := r.Latest(ctx)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, ErrNoContent) {
		return PortfolioData{}, err
	}

	seed := DefaultData()
	if err := r.append(ctx, seed); err != nil {
		return PortfolioData{}, fmt.Errorf("seed default content: %w", err)
	}
	return seed, nil
}

// Save merges the partial over the current version and appends the result
// as a new row. Two concurrent saves can read the same prior version and
// both append; the later row then wins in full (last write wins).
func (r *Repo) Save(ctx context.Context, partial Partial) (PortfolioData, error) {
	current, err := r.Bootstrap(ctx)
	if err != nil {
		return PortfolioData{}, err
	}

	merged, err := Merge(current, partial)
	if err != nil {
		return PortfolioData{}, err
	}

	if err := r.append(ctx, merged); err != nil {
		return PortfolioData{}, err
	}
	return merged, nil
}

func (r *Repo) append(ctx context.Context, data PortfolioData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal content: %w", err)
	}

	const q = `
insert into portfolio_data (data, updated_at)
values ($1, now());
`
	if _, err := r.db.Exec(ctx, q, raw); err != nil {
		return fmt.Errorf("append content version: %w", err)
	}
	return nil
}

// Prune deletes all but the newest keep versions and reports how many rows
// went away.
func (r *Repo) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 1 {
		keep = 1
	}

	const q = `
delete from portfolio_data
where id not in (
	select id from portfolio_data
	order by updated_at desc, id desc
	limit $1
);
`
	ct, err := r.db.Exec(ctx, q, keep)
	if err != nil {
		return 0, fmt.Errorf("prune content versions: %w", err)
	}
	return ct.RowsAffected(), nil
}
