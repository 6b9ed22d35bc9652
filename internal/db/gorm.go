package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrUnsupportedDriver = errors.New("unsupported driver")
)

// Filter narrows Find and GroupCount. Where entries are AND-ed equality
// conditions keyed by column name.
type Filter struct {
	Where   map[string]any
	OrderBy string
	Limit   int
}

type GormDB struct {
	db *gorm.DB
}

func NewGormDB(driver, dsn string) (*GormDB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Warn),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return New(db), nil
}

// New wraps an already opened gorm connection.
func New(db *gorm.DB) *GormDB {
	return &GormDB{
		db: db,
	}
}

func (g *GormDB) MigrateModels(models ...any) error {
	err := g.db.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// InsertIgnore inserts record unless a row with the same conflict columns
// already exists. It reports whether a row was written. Associations are
// never saved.
func (g *GormDB) InsertIgnore(ctx context.Context, record any, conflictColumns ...string) (bool, error) {
	res := g.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   toColumns(conflictColumns),
			DoNothing: true,
		}).
		Create(record)
	if res.Error != nil {
		return false, fmt.Errorf("insert to table: %w", res.Error)
	}

	return res.RowsAffected > 0, nil
}

func (g *GormDB) Upsert(ctx context.Context, record any, conflictColumns, updateColumns []string) error {
	err := g.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   toColumns(conflictColumns),
			DoUpdates: clause.AssignmentColumns(updateColumns),
		}).
		Create(record).Error
	if err != nil {
		return fmt.Errorf("upsert to table: %w", err)
	}

	return nil
}

func (g *GormDB) Find(ctx context.Context, dest any, filter Filter) error {
	err := filter.apply(g.db.WithContext(ctx)).Find(dest).Error
	if err != nil {
		return fmt.Errorf("find records: %w", err)
	}

	return nil
}

func (g *GormDB) GetOneBy(ctx context.Context, column string, value any, dest any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := g.db.WithContext(ctx).Where(query, value).Take(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}

	return nil
}

// GroupCount counts model rows per distinct groupColumn value, largest groups
// first. dest rows receive the columns "value" and "total".
func (g *GormDB) GroupCount(ctx context.Context, model any, groupColumn string, filter Filter, dest any) error {
	query := g.db.WithContext(ctx).
		Model(model).
		Select(fmt.Sprintf("%s AS value, COUNT(*) AS total", groupColumn))

	if len(filter.Where) > 0 {
		query = query.Where(filter.Where)
	}

	query = query.Group(groupColumn).Order("total DESC").Order(groupColumn + " ASC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Scan(dest).Error; err != nil {
		return fmt.Errorf("count records by %q: %w", groupColumn, err)
	}

	return nil
}

func (f Filter) apply(query *gorm.DB) *gorm.DB {
	if len(f.Where) > 0 {
		query = query.Where(f.Where)
	}
	if f.OrderBy != "" {
		query = query.Order(f.OrderBy)
	}
	if f.Limit > 0 {
		query = query.Limit(f.Limit)
	}
	return query
}

func toColumns(names []string) []clause.Column {
	columns := make([]clause.Column, 0, len(names))
	for _, name := range names {
		columns = append(columns, clause.Column{Name: name})
	}
	return columns
}
