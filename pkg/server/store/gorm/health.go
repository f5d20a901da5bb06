package gorm

import (
	"gorm.io/gorm"

	"github.com/rhq-project/rhq-in-go/pkg/server/store"
)

// Ensure HealthStore implements store.HealthStore
var _ store.HealthStore = (*HealthStore)(nil)

// HealthStore provides health check operations using GORM
type HealthStore struct {
	db *gorm.DB
}

// NewHealthStore creates a new HealthStore
func NewHealthStore(db *gorm.DB) *HealthStore {
	return &HealthStore{db: db}
}

// CheckConnectivity verifies database connectivity
func (s *HealthStore) CheckConnectivity() error {
	return s.db.Exec("SELECT 1").Error
}

// SchemaVersion reads the version recorded by the migration tool
func (s *HealthStore) SchemaVersion() (uint, bool, error) {
	var row struct {
		Version uint
		Dirty   bool
	}
	tx := s.db.Raw(`SELECT version, dirty FROM schema_migrations LIMIT 1`).Scan(&row)
	if tx.Error != nil {
		return 0, false, tx.Error
	}
	return row.Version, row.Dirty, nil
}
