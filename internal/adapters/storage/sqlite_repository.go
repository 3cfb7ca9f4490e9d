package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"svnbranch/internal/config"
	"svnbranch/internal/domain"
	"svnbranch/internal/logging"
	"svnbranch/internal/ports"
)

const defaultRetries = 5

// SQLiteRepository implements ports.StateStore using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.StateStore = (*SQLiteRepository)(nil)

// gormLogger wraps the svnbranch logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("SVNBRANCH_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (and migrates) the state database
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	dbPath = config.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL mode lets several svnbranch processes share the file
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&OperationModel{}, &WorkspaceModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	logging.Logger.Debug("State database opened", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// NewSQLiteRepositoryForHome opens $home/state.db
func NewSQLiteRepositoryForHome(home string) (*SQLiteRepository, error) {
	return NewSQLiteRepository(filepath.Join(home, "state.db"))
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Record implements OperationJournal.Record
func (r *SQLiteRepository) Record(ctx context.Context, rec domain.OperationRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	model := domainToOperationModel(rec)

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Create(&model).Error
	}, defaultRetries)
	if err != nil {
		return fmt.Errorf("failed to record operation %s: %w", rec.Operation, err)
	}
	return nil
}

// Recent implements OperationJournal.Recent, newest first
func (r *SQLiteRepository) Recent(ctx context.Context, limit int) ([]domain.OperationRecord, error) {
	var models []OperationModel
	err := withRetry(func() error {
		q := r.db.WithContext(ctx).Order("created_at DESC")
		if limit > 0 {
			q = q.Limit(limit)
		}
		return q.Find(&models).Error
	}, defaultRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to read operations: %w", err)
	}

	records := make([]domain.OperationRecord, 0, len(models))
	for _, m := range models {
		records = append(records, operationModelToDomain(m))
	}
	return records, nil
}

// Register implements WorkspaceRegistry.Register (upsert by path)
func (r *SQLiteRepository) Register(ctx context.Context, ws domain.WorkspaceRecord) error {
	model := WorkspaceModel{
		BranchPath:  domain.CleanRepoPath(ws.BranchPath),
		Path:        ws.Path,
		RepoRootURL: ws.RepoRootURL,
	}
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "path"}},
			DoUpdates: clause.AssignmentColumns([]string{"branch_path", "repo_root_url", "updated_at"}),
		}).Create(&model).Error
	}, defaultRetries)
	if err != nil {
		return fmt.Errorf("failed to register workspace %s: %w", ws.Path, err)
	}
	return nil
}

// Forget implements WorkspaceRegistry.Forget
func (r *SQLiteRepository) Forget(ctx context.Context, path string) error {
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("path = ?", path).Delete(&WorkspaceModel{}).Error
	}, defaultRetries)
	if err != nil {
		return fmt.Errorf("failed to forget workspace %s: %w", path, err)
	}
	return nil
}

// ListWorkspaces implements WorkspaceRegistry.ListWorkspaces
func (r *SQLiteRepository) ListWorkspaces(ctx context.Context) ([]domain.WorkspaceRecord, error) {
	var models []WorkspaceModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("path").Find(&models).Error
	}, defaultRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}

	records := make([]domain.WorkspaceRecord, 0, len(models))
	for _, m := range models {
		records = append(records, workspaceModelToDomain(m))
	}
	return records, nil
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
