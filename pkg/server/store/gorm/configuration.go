package gorm

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rhq-project/rhq-in-go/pkg/criteria"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/paging"
	"github.com/rhq-project/rhq-in-go/pkg/query"
	"github.com/rhq-project/rhq-in-go/pkg/server/store"
)

// Ensure ConfigurationStore implements store.ConfigurationStore
var _ store.ConfigurationStore = (*ConfigurationStore)(nil)

// ConfigurationStore implements store.ConfigurationStore using GORM
type ConfigurationStore struct {
	db    *gorm.DB
	authz *AuthzStore
}

// NewConfigurationStore creates a new ConfigurationStore
func NewConfigurationStore(db *gorm.DB) *ConfigurationStore {
	return &ConfigurationStore{db: db, authz: NewAuthzStore(db)}
}

// ResourceType returns the type of a resource
func (s *ConfigurationStore) ResourceType(resourceID int) (*model.ResourceType, error) {
	var rt model.ResourceType
	tx := s.db.Raw(`
		SELECT rt.* FROM rhq_resource_type rt
		JOIN rhq_resource r ON r.resource_type_id = rt.id
		WHERE r.id = ?`, resourceID).Scan(&rt)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return &rt, nil
}

// LatestConfiguration returns the configuration of the newest successful update
func (s *ConfigurationStore) LatestConfiguration(resourceID int) (*model.Configuration, error) {
	pc := paging.New(0, 1,
		paging.OrderingField{Field: "u.ctime", Ordering: paging.OrderingDESC},
		paging.OrderingField{Field: "u.id", Ordering: paging.OrderingDESC})
	tx, err := namedQueries.CreateQueryWithOrderBy(s.db, query.DialectPostgres, queryLatestConfiguration, pc, resourceID)
	if err != nil {
		return nil, err
	}

	var configs []model.Configuration
	if err := tx.Scan(&configs).Error; err != nil {
		return nil, err
	}
	if len(configs) == 0 {
		return nil, store.ErrNotFound
	}
	c := configs[0]
	if err := s.db.Where("config_id = ?", c.ID).Order("path").Find(&c.RawConfigurations).Error; err != nil {
		return nil, fmt.Errorf("loading raw configurations: %w", err)
	}
	return &c, nil
}

// HasUpdateInProgress checks if a resource has an INPROGRESS update
func (s *ConfigurationStore) HasUpdateInProgress(resourceID int) (bool, error) {
	tx, err := namedQueries.CreateCountQuery(s.db, queryUpdatesInProgress, resourceID)
	if err != nil {
		return false, err
	}
	var n int64
	if err := tx.Scan(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// CreateUpdate stores u and its configuration in one transaction
func (s *ConfigurationStore) CreateUpdate(u *model.ResourceConfigurationUpdate) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if u.Configuration != nil {
			if err := tx.Create(u.Configuration).Error; err != nil {
				return err
			}
			u.ConfigurationID = u.Configuration.ID
		}
		return tx.Omit("Resource", "Configuration").Create(u).Error
	})
}

// CompleteUpdate records the outcome of an update
func (s *ConfigurationStore) CompleteUpdate(updateID int, status model.UpdateStatus, message string, c *model.Configuration) (*model.ResourceConfigurationUpdate, error) {
	var u model.ResourceConfigurationUpdate
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&u, updateID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return store.ErrNotFound
			}
			return err
		}
		updates := map[string]interface{}{"status": status, "error_message": message}
		if c != nil {
			stored := c.Clone()
			if err := tx.Create(stored).Error; err != nil {
				return err
			}
			updates["config_id"] = stored.ID
			u.ConfigurationID = stored.ID
		}
		if err := tx.Model(&u).Updates(updates).Error; err != nil {
			return err
		}
		u.Status = status
		u.ErrorMessage = message
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// SearchUpdates returns the page of updates matching c on resources the subject may view
func (s *ConfigurationStore) SearchUpdates(ctx context.Context, c *criteria.ResourceConfigurationUpdateCriteria, subjectID int) (*paging.PageList[model.ResourceConfigurationUpdate], error) {
	return search[model.ResourceConfigurationUpdate](ctx, s.db, s.authz, c.Criteria, resourceScope("resource", subjectID))
}

// CreateGroupUpdate stores a group update
func (s *ConfigurationStore) CreateGroupUpdate(u *model.GroupConfigurationUpdate) error {
	return s.db.Create(u).Error
}

// GroupUpdate retrieves a single group update
func (s *ConfigurationStore) GroupUpdate(groupUpdateID int) (*model.GroupConfigurationUpdate, error) {
	var gu model.GroupConfigurationUpdate
	if err := s.db.First(&gu, groupUpdateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &gu, nil
}

// GroupMemberStatuses returns the status of every member update of a group update
func (s *ConfigurationStore) GroupMemberStatuses(groupUpdateID int) ([]model.UpdateStatus, error) {
	tx, err := namedQueries.CreateQueryWithOrderBy(s.db, query.DialectPostgres, queryGroupMemberStatuses, nil, groupUpdateID)
	if err != nil {
		return nil, err
	}
	var statuses []model.UpdateStatus
	if err := tx.Scan(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

// CompleteGroupUpdate records the aggregate outcome of a group update
func (s *ConfigurationStore) CompleteGroupUpdate(groupUpdateID int, status model.UpdateStatus, message string) error {
	return s.db.Model(&model.GroupConfigurationUpdate{}).
		Where("id = ?", groupUpdateID).
		Updates(map[string]interface{}{"status": status, "error_message": message}).Error
}
