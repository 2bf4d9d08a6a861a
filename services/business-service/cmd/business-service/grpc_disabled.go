//go:build !protogen

package main

import (
	"context"
	"log/slog"

	"github.com/crmdesk/crmdesk/libs/db"
	"github.com/crmdesk/crmdesk/services/business-service/internal/storage"
)

func startGrpcServer(_ context.Context, _ *slog.Logger, _ *db.Pool, _ *storage.Repository) error {
	return nil
}
