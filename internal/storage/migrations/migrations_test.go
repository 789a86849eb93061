package migrations

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Embedded(t *testing.T) {
	tests := []struct {
		dir  string
		fsys fs.FS
	}{
		{"postgres", PostgresFS},
		{"clickhouse", ClickhouseFS},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			files, err := load(tt.fsys, tt.dir)
			require.NoError(t, err)
			require.NotEmpty(t, files)
			assert.Equal(t, "001_kv_entries.sql", files[0].name)
			assert.Contains(t, files[0].sql, "kv_entries")
		})
	}
}

func TestSplitStatements(t *testing.T) {
	input := `
-- comment; with semicolon
CREATE TABLE a (x String) ENGINE = Memory;

CREATE TABLE b (y String DEFAULT 'it''s') ENGINE = Memory;
`
	stmts, err := splitStatements(input)
	require.NoError(t, err)
	require.Len(t, stmts, 2)
	assert.Equal(t, "CREATE TABLE a (x String) ENGINE = Memory", stmts[0])
	assert.Contains(t, stmts[1], "'it''s'")
}

func TestSplitStatements_RejectsSemicolonInLiteral(t *testing.T) {
	_, err := splitStatements(`INSERT INTO t VALUES ('a;b');`)
	assert.Error(t, err)
}

func TestDatabaseFromDSN(t *testing.T) {
	db, err := databaseFromDSN("clickhouse://default@localhost:9000/revlab")
	require.NoError(t, err)
	assert.Equal(t, "revlab", db)

	_, err = databaseFromDSN("clickhouse://localhost:9000")
	assert.Error(t, err)

	for _, dsn := range []string{
		"clickhouse://localhost:9000/revlab;DROP%20DATABASE%20system",
		"clickhouse://localhost:9000/rev-lab",
		"clickhouse://localhost:9000/1revlab",
		"clickhouse://localhost:9000/rev%60lab",
	} {
		_, err = databaseFromDSN(dsn)
		assert.Error(t, err, dsn)
	}
}
