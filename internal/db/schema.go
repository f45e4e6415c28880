// Package db owns the relational schema and the fixed category seed.
package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"aidhub/internal/domain"
	"aidhub/internal/infra"
)

// Execer is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Apply creates the tables and indexes if missing and seeds the categories.
// Safe to call on every start.
func Apply(ctx context.Context, db Execer, logger zerolog.Logger) error {
	for _, stmt := range schema {
		if err := execMarked(ctx, db, logger, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	for _, c := range domain.DefaultCategories {
		marker, body, err := infra.SplitMarker(qSeedCategory)
		if err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, body, c.Name, c.Description); err != nil {
			return fmt.Errorf("seed category %q: %w", c.Name, err)
		}
		logger.Debug().Str("sql", marker).Str("category", c.Name).Msg("category seeded")
	}
	return nil
}

func execMarked(ctx context.Context, db Execer, logger zerolog.Logger, stmt string) error {
	marker, body, err := infra.SplitMarker(stmt)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, body); err != nil {
		return fmt.Errorf("sql[%s]: %w", marker, err)
	}
	logger.Debug().Str("sql", marker).Msg("schema statement applied")
	return nil
}

var schema = []string{qCreateUsers, qCreateCategories, qCreateRequests, qCreateComments}

const qCreateUsers = `--sql a68b0334-1d2b-46d6-af4a-a7c71396c8e7
create table if not exists users (
    id            bigserial primary key,
    name          varchar(100) not null,
    email         varchar(100) not null unique,
    password_hash varchar(255) not null,
    phone         varchar(20),
    address       varchar(255),
    city          varchar(100),
    region        varchar(100),
    role          text not null check (role in ('requester', 'volunteer')),
    created_at    timestamptz not null default now(),
    updated_at    timestamptz not null default now()
);
`

const qCreateCategories = `--sql 1ff51fac-da66-46df-9be1-88f494410ba0
create table if not exists categories (
    id          bigserial primary key,
    name        varchar(100) not null unique,
    description text
);
`

const qCreateRequests = `--sql 3f2e5b88-e189-4739-bcf6-72abebe8d86c
create table if not exists aid_requests (
    id           bigserial primary key,
    category_id  bigint not null references categories(id),
    requester_id bigint not null references users(id),
    volunteer_id bigint references users(id),
    title        varchar(200) not null,
    description  text not null,
    budget       numeric(10,2) check (budget is null or budget >= 0),
    priority     text not null default 'Medium' check (priority in ('Low', 'Medium', 'High')),
    city         varchar(100),
    region       varchar(100) not null,
    status       text not null default 'AwaitingVolunteer'
                 check (status in ('AwaitingVolunteer', 'InProgress', 'Done', 'Cancelled')),
    created_at   timestamptz not null default now(),
    updated_at   timestamptz not null default now(),
    check (status <> 'AwaitingVolunteer' or volunteer_id is null)
);
create index if not exists idx_aid_requests_status on aid_requests(status);
create index if not exists idx_aid_requests_region on aid_requests(region);
create index if not exists idx_aid_requests_requester on aid_requests(requester_id);
create index if not exists idx_aid_requests_volunteer on aid_requests(volunteer_id);
`

const qCreateComments = `--sql ccbe4d05-5457-4baf-a332-9ae7c42b1626
create table if not exists comments (
    id         bigserial primary key,
    request_id bigint not null references aid_requests(id) on delete cascade,
    user_id    bigint not null references users(id),
    text       text not null check (length(btrim(text)) > 0),
    created_at timestamptz not null default now()
);
create index if not exists idx_comments_request on comments(request_id, created_at);
`

const qSeedCategory = `--sql 9364cc9d-e95e-42f5-b585-102618288711
insert into categories (name, description)
values ($1, $2)
on conflict (name) do nothing;
`
