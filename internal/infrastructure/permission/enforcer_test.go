package permission

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ticketsystem/internal/domain/access"
	"ticketsystem/internal/shared/logger"
)

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (noopLogger) Fatal(msg string, args ...any)                   {}
func (noopLogger) With(args ...any) logger.Interface               { return noopLogger{} }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

func TestEnforcer_MirrorsAccessMatrix(t *testing.T) {
	// A file-backed database: with the pure-Go driver each pooled
	// connection would otherwise see its own in-memory database.
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "casbin.db")), &gorm.Config{})
	require.NoError(t, err)

	enforcer, err := NewEnforcer(db, noopLogger{})
	require.NoError(t, err)

	cases := []struct {
		role    string
		action  access.Action
		allowed bool
	}{
		{"admin", access.ActionDeleteTicket, true},
		{"developer", access.ActionDeleteTicket, false},
		{"user", access.ActionDeleteTicket, false},
		{"admin", access.ActionReassignTicket, true},
		{"developer", access.ActionReassignTicket, false},
		{"user", access.ActionCreateTicket, true},
		{"developer", access.ActionModifyProject, true},
		{"user", access.ActionModifyProject, false},
		{"developer", access.ActionDeleteProject, false},
		{"admin", access.ActionViewDashboard, true},
		{"developer", access.ActionViewDashboard, false},
		// ownership-scoped actions are open at the route level
		{"developer", access.ActionEditTicket, true},
		{"user", access.ActionEditTicket, false},
	}

	for _, tc := range cases {
		allowed, err := enforcer.Enforce(tc.role, tc.action)
		require.NoError(t, err)
		assert.Equal(t, tc.allowed, allowed, "%s %s", tc.role, tc.action)
	}
}
