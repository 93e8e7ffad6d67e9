package db

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanPrintsEveryStatement(t *testing.T) {
	var out bytes.Buffer
	planCmd.SetOut(&out)
	defer planCmd.SetOut(nil)

	require.NoError(t, planCmd.RunE(planCmd, nil))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	for _, l := range lines {
		assert.True(t, strings.HasPrefix(l, "PLAN: "), l)
		assert.True(t, strings.HasSuffix(l, ";"), l)
	}
	assert.Contains(t, lines[0], "CREATE TABLE IF NOT EXISTS tags")
	assert.Equal(t, "PLAN: CREATE INDEX IF NOT EXISTS tags_user_id_idx ON tags(user_id);", lines[1])
	assert.Equal(t, "PLAN: CREATE INDEX IF NOT EXISTS tags_tag_idx ON tags(tag);", lines[2])
	assert.Equal(t, "PLAN: CREATE INDEX IF NOT EXISTS tags_last_used_idx ON tags(last_used);", lines[3])
}
