package gorm

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/server/store"
)

// Ensure AuthenticateStore implements store.AuthenticateStore
var _ store.AuthenticateStore = (*AuthenticateStore)(nil)

// AuthenticateStore implements store.AuthenticateStore using GORM
type AuthenticateStore struct {
	db *gorm.DB
}

// NewAuthenticateStore creates a new AuthenticateStore
func NewAuthenticateStore(db *gorm.DB) *AuthenticateStore {
	return &AuthenticateStore{db: db}
}

// Authenticate checks a password against rhq_principal and returns the
// matching subject. Unknown names, wrong passwords and disabled subjects
// all yield ErrInvalidCredentials.
func (s *AuthenticateStore) Authenticate(name, password string) (*model.Subject, error) {
	var principal model.Principal
	tx := s.db.Where("principal = ?", name).First(&principal)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrInvalidCredentials
		}
		return nil, tx.Error
	}
	if !principal.Matches(password) {
		return nil, store.ErrInvalidCredentials
	}

	var subject model.Subject
	tx = s.db.Where("name = ?", name).First(&subject)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrInvalidCredentials
		}
		return nil, tx.Error
	}
	if !subject.FactiveFlag {
		return nil, store.ErrInvalidCredentials
	}
	return &subject, nil
}

// ChangePassword upserts the principal's password hash
func (s *AuthenticateStore) ChangePassword(name, password string) error {
	principal := model.Principal{Principal: name, Password: model.HashPassword(password)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "principal"}},
		DoUpdates: clause.AssignmentColumns([]string{"password"}),
	}).Create(&principal).Error
}
