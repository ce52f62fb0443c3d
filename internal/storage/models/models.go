package models

import (
	"time"

	"gorm.io/datatypes"
)

// Candidate is one imported candidate row, keyed by UUID and unique per
// owner on the normalized email and phone.
type Candidate struct {
	CandidateID string `gorm:"type:char(36);primaryKey"`
	OwnerID     string `gorm:"type:char(36);not null;index:idx_candidates_owner;uniqueIndex:idx_candidates_owner_email,priority:1;uniqueIndex:idx_candidates_owner_phone,priority:1"`

	Name           string   `gorm:"type:varchar(255)"`
	Phone          string   `gorm:"type:varchar(50);uniqueIndex:idx_candidates_owner_phone,priority:2"`
	Email          string   `gorm:"type:varchar(255);uniqueIndex:idx_candidates_owner_email,priority:2"`
	Location       string   `gorm:"type:varchar(255)"`
	Position       string   `gorm:"type:varchar(255)"`
	Experience     *float64 `gorm:"type:decimal(5,2)"`
	CTC            *float64 `gorm:"type:decimal(8,2)"`
	ExpectedSalary *float64 `gorm:"type:decimal(8,2)"`
	NoticePeriod   *int     `gorm:"type:int"`
	Company        string   `gorm:"type:varchar(255)"`
	Client         string   `gorm:"type:varchar(255)"`
	SPOC           string   `gorm:"type:varchar(255)"`
	Status         string   `gorm:"type:varchar(100);index:idx_candidates_status"`
	SourceOfCV     string   `gorm:"type:varchar(100)"`

	// Non-winning alternates retained from detection, per field.
	AlternatesJSON datatypes.JSON `gorm:"type:json"`

	Category   string `gorm:"type:varchar(20);index:idx_candidates_category"`
	Confidence int    `gorm:"type:int"`

	ImportBatchID string    `gorm:"type:char(36);index:idx_candidates_batch"`
	CreatedAt     time.Time `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6)"`
	UpdatedAt     time.Time `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6);autoUpdateTime"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// ImportBatch records one upload pass and its outcome for auditing.
type ImportBatch struct {
	BatchID    string         `gorm:"type:char(36);primaryKey"`
	OwnerID    string         `gorm:"type:char(36);not null;index:idx_import_batches_owner"`
	FileName   string         `gorm:"type:varchar(255)"`
	ReportJSON datatypes.JSON `gorm:"type:json"`
	Status     string         `gorm:"type:varchar(20);default:'PROCESSED';index:idx_import_batches_status"` // PROCESSED or CONFIRMED
	CreatedAt  time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6)"`
	UpdatedAt  time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6);autoUpdateTime"`
}

func (ImportBatch) TableName() string {
	return "import_batches"
}
