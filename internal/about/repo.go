package about

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, e Entry) (Entry, error)
	List(ctx context.Context) ([]Entry, error)
	Update(ctx context.Context, id string, patch Patch, now time.Time) (Entry, error)
}

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

const aboutSchema = `
create table if not exists about (
    id          uuid primary key,
    title       text not null,
    description text not null default '',
    paragraphs  text[] not null default '{}',
    created_at  timestamptz not null default now(),
    updated_at  timestamptz not null default now()
);
`

func (r *PostgresRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, aboutSchema)
	return err
}

func (r *PostgresRepo) Create(ctx context.Context, e Entry) (Entry, error) {
	const q = `
insert into about (id, title, description, paragraphs, created_at, updated_at)
values ($1, $2, $3, $4, $5, $6)
returning id, title, description, paragraphs, created_at, updated_at;
`
	var out Entry
	err := r.db.QueryRow(ctx, q, e.ID, e.Title, e.Description, e.Paragraphs, e.CreatedAt, e.UpdatedAt).
		Scan(&out.ID, &out.Title, &out.Description, &out.Paragraphs, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return Entry{}, err
	}
	return out, nil
}

func (r *PostgresRepo) List(ctx context.Context) ([]Entry, error) {
	const q = `
select id, title, description, paragraphs, created_at, updated_at
from about
order by created_at desc, id desc;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Entry, 0, 4)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Paragraphs, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Update(ctx context.Context, id string, patch Patch, now time.Time) (Entry, error) {
	const q = `
update about set
  title       = coalesce($2, title),
  description = coalesce($3, description),
  paragraphs  = coalesce($4, paragraphs),
  updated_at  = $5
where id = $1
returning id, title, description, paragraphs, created_at, updated_at;
`
	var e Entry
	err := r.db.QueryRow(ctx, q, id, patch.Title, patch.Description, patch.Paragraphs, now).
		Scan(&e.ID, &e.Title, &e.Description, &e.Paragraphs, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, err
	}
	return e, nil
}
