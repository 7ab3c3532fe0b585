package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/redis"
	sheetrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet"
)

var (
	auditRedisAddr string
	auditPassword  string
	auditDB        int
	auditPurge     bool
	auditYes       bool
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Scan Redis for sheets that can no longer be loaded",
	Long: `Scan every sheet:* key and report payloads the server would fail to
decode. With --purge the corrupt keys are deleted after confirmation.`,
	RunE: runAudit,
}

func init() {
	flags := auditCmd.Flags()
	flags.StringVar(&auditRedisAddr, "redis-addr", "localhost:6379", "Redis address")
	flags.StringVar(&auditPassword, "redis-password", "", "Redis password")
	flags.IntVar(&auditDB, "redis-db", 0, "Redis database")
	flags.BoolVar(&auditPurge, "purge", false, "delete corrupt sheets")
	flags.BoolVarP(&auditYes, "yes", "y", false, "skip the purge confirmation")
}

func runAudit(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := redis.NewClient(auditRedisAddr, &redis.Options{
		Password: auditPassword,
		DB:       auditDB,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() { _ = client.Close() }()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to reach redis at %s: %w", auditRedisAddr, err)
	}

	out := cmd.OutOrStdout()
	report, err := sheetrepo.Audit(ctx, client, sheetrepo.AuditInput{})
	if err != nil {
		return err
	}
	printAudit(out, report)

	if !auditPurge || len(report.Corrupt) == 0 {
		return nil
	}
	if !auditYes && !confirm(cmd.InOrStdin(), out, "Delete these corrupt sheets?") {
		_, _ = fmt.Fprintln(out, "Aborted, no changes made")
		return nil
	}

	purged, err := sheetrepo.Audit(ctx, client, sheetrepo.AuditInput{Purge: true})
	if err != nil {
		return err
	}
	for _, key := range purged.Purged {
		_, _ = fmt.Fprintf(out, "Deleted %s\n", key)
	}
	return nil
}

func printAudit(w io.Writer, report *sheetrepo.AuditOutput) {
	_, _ = fmt.Fprintf(w, "Checked %d sheets, found %d corrupt\n", report.Checked, len(report.Corrupt))
	for _, c := range report.Corrupt {
		_, _ = fmt.Fprintf(w, "  - %s: %s\n", c.Key, c.Reason)
	}
}

func confirm(in io.Reader, out io.Writer, prompt string) bool {
	_, _ = fmt.Fprintf(out, "%s (yes/no): ", prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.TrimSpace(strings.ToLower(line)) == "yes"
}
