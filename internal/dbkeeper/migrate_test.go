package dbkeeper

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type nopLog struct{}

func (nopLog) Info(string, ...zap.Field)  {}
func (nopLog) Error(string, ...zap.Field) {}

func TestMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(migrations, "migrations")
	require.NoError(t, err)

	ups, downs := map[string]bool{}, map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}
	require.NotEmpty(t, ups)
	require.Equal(t, ups, downs)
}

func TestNewDBKeeperWithoutDSN(t *testing.T) {
	require.Nil(t, NewDBKeeper(t.Context(), func() string { return "" }, nopLog{}))
	require.Nil(t, NewDBKeeper(t.Context(), func() string { return "::not a dsn::" }, nopLog{}))
}

func TestMigrationLogger(t *testing.T) {
	ml := migrationLogger{log: nopLog{}}

	require.False(t, ml.Verbose())
	require.NotPanics(t, func() { ml.Printf("applied %d", 1) })
}

type countingCloser struct {
	calls int
	err   error
}

func (c *countingCloser) Close() error {
	c.calls++
	return c.err
}

func TestCloseAllClosesEverything(t *testing.T) {
	driver := &countingCloser{err: errors.New("conn busy")}
	db := &countingCloser{}

	err := closeAll(driver, db)

	require.ErrorIs(t, err, driver.err)
	require.Equal(t, 1, driver.calls)
	require.Equal(t, 1, db.calls)
	require.NoError(t, closeAll(db))
}
