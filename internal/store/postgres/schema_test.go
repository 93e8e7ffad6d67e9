package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaDDLIsFullyIdempotent(t *testing.T) {
	stmts := Statements()
	require.Len(t, stmts, 4)
	for _, s := range stmts {
		assert.Contains(t, s, "IF NOT EXISTS", "every statement must be re-runnable: %s", s)
	}
}

func TestSchemaDDLTableContract(t *testing.T) {
	stmts := Statements()
	table := stmts[0]
	assert.True(t, strings.HasPrefix(table, "CREATE TABLE IF NOT EXISTS tags"), table)
	assert.Contains(t, table, "id serial PRIMARY KEY NOT NULL")
	assert.Contains(t, table, "user_id integer NOT NULL")
	assert.Contains(t, table, "tag text NOT NULL")
	assert.Contains(t, table, "first_used timestamp DEFAULT now() NOT NULL")
	assert.Contains(t, table, "last_used timestamp DEFAULT now() NOT NULL")
	assert.Contains(t, table, "usage_count integer DEFAULT 1 NOT NULL")
	assert.Contains(t, table, "created_at timestamp DEFAULT now() NOT NULL")
	assert.Contains(t, table, "CONSTRAINT tags_user_id_tag_unique UNIQUE(user_id, tag)")
}

func TestSchemaDDLIndexContract(t *testing.T) {
	stmts := Statements()
	assert.Equal(t, "CREATE INDEX IF NOT EXISTS tags_user_id_idx ON tags(user_id)", stmts[1])
	assert.Equal(t, "CREATE INDEX IF NOT EXISTS tags_tag_idx ON tags(tag)", stmts[2])
	assert.Equal(t, "CREATE INDEX IF NOT EXISTS tags_last_used_idx ON tags(last_used)", stmts[3])
}

func TestStatementsCoverWholeBatch(t *testing.T) {
	// Splitting is display-only; nothing may be lost or invented relative to
	// the executed batch.
	joined := strings.Join(Statements(), ";\n") + ";"
	assert.Equal(t, SchemaDDL, joined)
}

func TestIndexNamesMatchDDL(t *testing.T) {
	for _, name := range IndexNames {
		assert.Contains(t, SchemaDDL, name)
	}
	assert.Contains(t, SchemaDDL, UniqueConstraintName)
}
