package contacts

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository is the persistence contract for contacts; both backends
// order the listing newest first.
type Repository interface {
	Create(ctx context.Context, in NewContact, now time.Time) (Contact, error)
	List(ctx context.Context) ([]Contact, error)
}

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

const contactSchema = `
create table if not exists contacts (
    id         bigserial primary key,
    name       text not null,
    email      text not null,
    company    text not null default '',
    service    text not null,
    message    text not null,
    created_at timestamptz not null default now()
);
`

func (r *PostgresRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, contactSchema)
	return err
}

func (r *PostgresRepo) Create(ctx context.Context, in NewContact, now time.Time) (Contact, error) {
	const q = `
insert into contacts (name, email, company, service, message, created_at)
values ($1, $2, $3, $4, $5, $6)
returning id, name, email, company, service, message, created_at;
`
	var ct Contact
	err := r.db.QueryRow(ctx, q, in.Name, in.Email, in.Company, in.Service, in.Message, now).
		Scan(&ct.ID, &ct.Name, &ct.Email, &ct.Company, &ct.Service, &ct.Message, &ct.CreatedAt)
	if err != nil {
		return Contact{}, err
	}
	return ct, nil
}

func (r *PostgresRepo) List(ctx context.Context) ([]Contact, error) {
	const q = `
select id, name, email, company, service, message, created_at
from contacts
order by created_at desc, id desc;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Contact, 0, 16)
	for rows.Next() {
		var ct Contact
		if err := rows.Scan(&ct.ID, &ct.Name, &ct.Email, &ct.Company, &ct.Service, &ct.Message, &ct.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, ct)
	}
	return out, rows.Err()
}
