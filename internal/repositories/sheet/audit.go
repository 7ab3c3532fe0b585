package sheetrepo

import (
	"context"
	"encoding/json"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
)

// AuditInput controls a scan of stored sheets
type AuditInput struct {
	// Purge deletes every corrupt key found during the scan
	Purge bool
}

// CorruptSheet describes a key whose payload cannot be loaded
type CorruptSheet struct {
	Key    string
	Reason string
}

// AuditOutput summarizes a scan
type AuditOutput struct {
	Checked int
	Corrupt []CorruptSheet
	Purged  []string
}

// Audit walks every sheet key and reports payloads that Get would reject.
func Audit(ctx context.Context, client redisclient.Client, input AuditInput) (*AuditOutput, error) {
	if client == nil {
		return nil, errors.InvalidArgument("client is required")
	}

	out := &AuditOutput{}
	iter := client.Scan(ctx, 0, sheetKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		out.Checked++

		data, err := client.Get(ctx, key).Bytes()
		if err == redis.Nil {
			// expired between scan and read
			out.Checked--
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", key)
		}

		if reason := inspectPayload(key, data); reason != "" {
			out.Corrupt = append(out.Corrupt, CorruptSheet{Key: key, Reason: reason})
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to scan sheet keys")
	}

	if !input.Purge {
		return out, nil
	}

	for _, c := range out.Corrupt {
		if err := client.Del(ctx, c.Key).Err(); err != nil {
			return out, errors.Wrapf(err, "failed to delete %s", c.Key)
		}
		out.Purged = append(out.Purged, c.Key)
	}

	return out, nil
}

func inspectPayload(key string, data []byte) string {
	var s sheet.Sheet
	if err := json.Unmarshal(data, &s); err != nil {
		return "invalid json"
	}
	if s.ID == "" {
		return "missing sheet id"
	}
	if id := strings.TrimPrefix(key, sheetKeyPrefix); id != s.ID {
		return "sheet id does not match key"
	}
	return ""
}
