package usecase

import (
	"context"
	"encoding/json"
	"time"

	"supplyconnect/internal/backend"
	"supplyconnect/internal/domain/model"

	"github.com/labstack/gommon/log"
)

// 監査ログを残す。失敗しても操作自体は成功のまま（ログだけ出す）。
func writeAudit(ctx context.Context, client backend.Client, logger *log.Logger, entry model.AuditLog, before, after any) {
	entry.BeforeJSON = toJSON(before)
	entry.AfterJSON = toJSON(after)
	entry.CreatedAt = time.Now()
	if err := client.AuditLogs().Create(ctx, entry); err != nil {
		logger.Errorj(log.JSON{
			"event":       "audit_log_failed",
			"action":      string(entry.Action),
			"resource_id": entry.ResourceID,
			"error":       err.Error(),
		})
	}
}

func toJSON(v any) string {
	if v == nil {
		return ""
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
