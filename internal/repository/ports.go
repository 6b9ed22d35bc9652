package repository

import (
	"context"
	"eoatracker/internal/db"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateModels(models ...any) error
	InsertIgnore(ctx context.Context, record any, conflictColumns ...string) (bool, error)
	Upsert(ctx context.Context, record any, conflictColumns, updateColumns []string) error
	Find(ctx context.Context, dest any, filter db.Filter) error
	GetOneBy(ctx context.Context, column string, value any, dest any) error
	GroupCount(ctx context.Context, model any, groupColumn string, filter db.Filter, dest any) error
}
