package postgres

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tagkeep/tagkeep/internal/store/dbutil"
)

// TableName is the single table this tool provisions.
const TableName = "tags"

// SchemaDDL is the fixed provisioning batch. The text is a compatibility
// contract: other deployments of the tag store apply byte-identical DDL, so it
// must not be reformatted. Every statement is an "if not exists" form, which is
// what makes re-running the provisioner a no-op.
const SchemaDDL = `CREATE TABLE IF NOT EXISTS tags (
  id serial PRIMARY KEY NOT NULL,
  user_id integer NOT NULL,
  tag text NOT NULL,
  first_used timestamp DEFAULT now() NOT NULL,
  last_used timestamp DEFAULT now() NOT NULL,
  usage_count integer DEFAULT 1 NOT NULL,
  created_at timestamp DEFAULT now() NOT NULL,
  CONSTRAINT tags_user_id_tag_unique UNIQUE(user_id, tag)
);
CREATE INDEX IF NOT EXISTS tags_user_id_idx ON tags(user_id);
CREATE INDEX IF NOT EXISTS tags_tag_idx ON tags(tag);
CREATE INDEX IF NOT EXISTS tags_last_used_idx ON tags(last_used);`

// IndexNames lists the indexes SchemaDDL creates, in creation order. The unique
// constraint also materializes as an index named after it.
var IndexNames = []string{
	"tags_user_id_idx",
	"tags_tag_idx",
	"tags_last_used_idx",
}

// UniqueConstraintName enforces one row per (user_id, tag).
const UniqueConstraintName = "tags_user_id_tag_unique"

// EnsureSchema submits the whole DDL batch as a single request. With no bound
// parameters pgx uses the simple query protocol, so the server receives one
// multi-statement string and either applies all of it or reports one failure;
// there is no partial-failure mode to handle here.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, SchemaDDL); err != nil {
		return dbutil.ErrWrap("schema.ensure", err)
	}
	return nil
}

// DropSchema removes the provisioned table; its indexes and the unique
// constraint go with it. Idempotent like EnsureSchema.
func DropSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, `DROP TABLE IF EXISTS tags`); err != nil {
		return dbutil.ErrWrap("schema.drop", err)
	}
	return nil
}

// Statements splits SchemaDDL into its individual statements, for display only.
// Execution always goes through EnsureSchema as one batch.
func Statements() []string {
	parts := strings.Split(SchemaDDL, ";\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSuffix(strings.TrimSpace(p), ";")
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
