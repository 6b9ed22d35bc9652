package handler

import (
	"context"
	"eoatracker/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ReportService . ReportService
type ReportService interface {
	Report(ctx context.Context) ([]core.ChainReport, error)
	ChainContracts(ctx context.Context, chainID int64) ([]core.ContractUsage, error)
}
