package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"talent-import-go/internal/config"
	"talent-import-go/internal/storage/models"
)

// MySQL wraps the GORM handle and the candidate persistence operations.
type MySQL struct {
	db  *gorm.DB
	cfg *config.MySQLConfig
}

// NewMySQL connects, configures the pool and migrates the schema.
func NewMySQL(cfg *config.MySQLConfig) (*MySQL, error) {
	if cfg == nil {
		return nil, fmt.Errorf("mysql config must not be nil")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Database,
		cfg.ConnectTimeoutSeconds, cfg.ReadTimeoutSeconds, cfg.WriteTimeoutSeconds)

	var logLevel logger.LogLevel
	switch cfg.LogLevel {
	case 1:
		logLevel = logger.Silent
	case 2:
		logLevel = logger.Error
	case 3:
		logLevel = logger.Warn
	default:
		logLevel = logger.Info
	}

	gormConfig := &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logLevel),
		PrepareStmt:                              true,
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
	}

	db, err := gorm.Open(mysql.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mysql: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTimeMinutes) * time.Minute)

	m := &MySQL{db: db, cfg: cfg}
	if err := m.autoMigrateSchema(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("schema auto-migration failed: %w", err)
	}
	return m, nil
}

func (m *MySQL) autoMigrateSchema() error {
	return m.db.AutoMigrate(
		&models.Candidate{},
		&models.ImportBatch{},
	)
}

// DB exposes the GORM handle for callers needing raw queries.
func (m *MySQL) DB() *gorm.DB {
	return m.db
}

// Close closes the underlying connection pool.
func (m *MySQL) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// LoadIdentifierSnapshot returns every normalized email and phone persisted
// for the owner. The import pipeline consumes this once per batch.
func (m *MySQL) LoadIdentifierSnapshot(ctx context.Context, ownerID string) (emails, phones []string, err error) {
	rows := []struct {
		Email string
		Phone string
	}{}
	err = m.db.WithContext(ctx).
		Model(&models.Candidate{}).
		Select("email", "phone").
		Where("owner_id = ?", ownerID).
		Find(&rows).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load identifier snapshot: %w", err)
	}
	for _, r := range rows {
		if r.Email != "" {
			emails = append(emails, r.Email)
		}
		if r.Phone != "" {
			phones = append(phones, r.Phone)
		}
	}
	return emails, phones, nil
}

// SaveImportBatch records the batch audit row.
func (m *MySQL) SaveImportBatch(ctx context.Context, batch *models.ImportBatch) error {
	return m.db.WithContext(ctx).Create(batch).Error
}

// ConfirmImport upserts the confirmed candidates in one transaction and
// marks the batch CONFIRMED. Rows colliding on the per-owner email or phone
// unique keys are merged in place rather than duplicated.
func (m *MySQL) ConfirmImport(ctx context.Context, batchID string, candidates []models.Candidate) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(candidates) > 0 {
			err := tx.Clauses(clause.OnConflict{
				DoUpdates: clause.AssignmentColumns([]string{
					"name", "location", "position", "experience", "ctc",
					"expected_salary", "notice_period", "company", "client",
					"spoc", "status", "source_of_cv", "alternates_json",
					"category", "confidence", "import_batch_id",
				}),
			}).CreateInBatches(candidates, 100).Error
			if err != nil {
				return fmt.Errorf("failed to upsert candidates: %w", err)
			}
		}

		res := tx.Model(&models.ImportBatch{}).
			Where("batch_id = ?", batchID).
			Update("status", "CONFIRMED")
		if res.Error != nil {
			return fmt.Errorf("failed to mark batch confirmed: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// GetImportBatch fetches one batch audit row.
func (m *MySQL) GetImportBatch(ctx context.Context, batchID string) (*models.ImportBatch, error) {
	var batch models.ImportBatch
	err := m.db.WithContext(ctx).Where("batch_id = ?", batchID).First(&batch).Error
	if err != nil {
		return nil, err
	}
	return &batch, nil
}
