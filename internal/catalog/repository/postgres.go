package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Robertofsouzas/newsite/internal/catalog/domain"
)

// Postgres stores projects in a projects table; id and slug uniqueness
// are enforced by the database.
type Postgres struct {
	db *pgxpool.Pool
}

func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{db: db}
}

const projectSchema = `
create table if not exists projects (
    id               uuid primary key,
    title            text not null,
    slug             text not null unique,
    description      text not null default '',
    full_description text not null default '',
    type             text not null,
    image_url        text not null default '',
    embed_url        text not null default '',
    benefits         text not null default '',
    technologies     text[] not null default '{}',
    is_active        boolean not null default true,
    featured         boolean not null default false,
    created_at       timestamptz not null default now(),
    updated_at       timestamptz not null default now()
);
`

func (r *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, projectSchema)
	return err
}

const projectCols = `id, title, slug, description, full_description, type,
image_url, embed_url, benefits, technologies, is_active, featured,
created_at, updated_at`

func scanProject(row pgx.Row) (domain.Project, error) {
	var p domain.Project
	var typ string
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Description, &p.FullDescription, &typ,
		&p.ImageURL, &p.EmbedURL, &p.Benefits, &p.Technologies,
		&p.IsActive, &p.Featured, &p.CreatedAt, &p.UpdatedAt,
	)
	p.Type = domain.ProjectType(typ)
	return p, err
}

func (r *Postgres) Create(ctx context.Context, p domain.Project) (domain.Project, error) {
	const q = `
insert into projects (id, title, slug, description, full_description, type,
  image_url, embed_url, benefits, technologies, is_active, featured,
  created_at, updated_at)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
returning ` + projectCols + `;`

	stored, err := scanProject(r.db.QueryRow(ctx, q,
		p.ID, p.Title, p.Slug, p.Description, p.FullDescription, string(p.Type),
		p.ImageURL, p.EmbedURL, p.Benefits, p.Technologies,
		p.IsActive, p.Featured, p.CreatedAt, p.UpdatedAt,
	))
	if err != nil {
		// unique violation on slug
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.Project{}, domain.ErrSlugTaken
		}
		return domain.Project{}, err
	}
	return stored, nil
}

func (r *Postgres) List(ctx context.Context) ([]domain.Project, error) {
	return r.listWhere(ctx, "true", nil)
}

func (r *Postgres) ListActive(ctx context.Context) ([]domain.Project, error) {
	return r.listWhere(ctx, "is_active", nil)
}

func (r *Postgres) ListFeatured(ctx context.Context) ([]domain.Project, error) {
	return r.listWhere(ctx, "featured", nil)
}

func (r *Postgres) ListByType(ctx context.Context, t domain.ProjectType) ([]domain.Project, error) {
	return r.listWhere(ctx, "type = $1", []any{string(t)})
}

func (r *Postgres) listWhere(ctx context.Context, cond string, args []any) ([]domain.Project, error) {
	// id is the tie-break so ordering is stable across calls.
	q := `select ` + projectCols + ` from projects where ` + cond +
		` order by created_at desc, id desc;`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Postgres) GetByID(ctx context.Context, id string) (domain.Project, error) {
	const q = `select ` + projectCols + ` from projects where id = $1;`
	p, err := scanProject(r.db.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Project{}, domain.ErrProjectNotFound
	}
	return p, err
}

func (r *Postgres) GetBySlug(ctx context.Context, slug string) (domain.Project, error) {
	const q = `select ` + projectCols + ` from projects where slug = $1;`
	p, err := scanProject(r.db.QueryRow(ctx, q, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Project{}, domain.ErrProjectNotFound
	}
	return p, err
}

// Update merges the patch in a single statement: nil patch fields arrive
// as SQL nulls and coalesce to the stored value.
func (r *Postgres) Update(ctx context.Context, id string, patch domain.ProjectPatch, now time.Time) (domain.Project, error) {
	const q = `
update projects set
  title            = coalesce($2, title),
  slug             = coalesce($3, slug),
  description      = coalesce($4, description),
  full_description = coalesce($5, full_description),
  type             = coalesce($6, type),
  image_url        = coalesce($7, image_url),
  embed_url        = coalesce($8, embed_url),
  benefits         = coalesce($9, benefits),
  technologies     = coalesce($10, technologies),
  is_active        = coalesce($11, is_active),
  featured         = coalesce($12, featured),
  updated_at       = $13
where id = $1
returning ` + projectCols + `;`

	var typ *string
	if patch.Type != nil {
		s := string(*patch.Type)
		typ = &s
	}

	p, err := scanProject(r.db.QueryRow(ctx, q,
		id, patch.Title, patch.Slug, patch.Description, patch.FullDescription, typ,
		patch.ImageURL, patch.EmbedURL, patch.Benefits, patch.Technologies,
		patch.IsActive, patch.Featured, now,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Project{}, domain.ErrProjectNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.Project{}, domain.ErrSlugTaken
		}
		return domain.Project{}, err
	}
	return p, nil
}

func (r *Postgres) Delete(ctx context.Context, id string) (bool, error) {
	const q = `delete from projects where id = $1;`
	ct, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}
