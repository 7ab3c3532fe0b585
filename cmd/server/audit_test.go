package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuditAgainst(t *testing.T, mr *miniredis.Miniredis, purge bool, stdin string) string {
	t.Helper()

	auditRedisAddr = mr.Addr()
	auditPurge = purge
	auditYes = false
	t.Cleanup(func() {
		auditRedisAddr = "localhost:6379"
		auditPurge = false
	})

	var out bytes.Buffer
	auditCmd.SetOut(&out)
	auditCmd.SetIn(strings.NewReader(stdin))
	auditCmd.SetContext(context.Background())

	require.NoError(t, runAudit(auditCmd, nil))
	return out.String()
}

func TestAuditReportsWithoutDeleting(t *testing.T) {
	mr := miniredis.RunT(t)
	require.NoError(t, mr.Set("sheet:broken", "{"))

	out := runAuditAgainst(t, mr, false, "")

	assert.Contains(t, out, "Checked 1 sheets, found 1 corrupt")
	assert.Contains(t, out, "sheet:broken: invalid json")
	assert.True(t, mr.Exists("sheet:broken"))
}

func TestAuditPurgeNeedsConfirmation(t *testing.T) {
	mr := miniredis.RunT(t)
	require.NoError(t, mr.Set("sheet:broken", "{"))

	out := runAuditAgainst(t, mr, true, "no\n")
	assert.Contains(t, out, "Aborted")
	assert.True(t, mr.Exists("sheet:broken"))

	out = runAuditAgainst(t, mr, true, "yes\n")
	assert.Contains(t, out, "Deleted sheet:broken")
	assert.False(t, mr.Exists("sheet:broken"))
}
