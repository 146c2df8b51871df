// Package auth implements phone+password accounts and the demo login.
// Endpoints stay open; the issued token only identifies the caller.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"arboria/entities"
	"arboria/pkg/apperr"
)

type Service struct {
	db     *gorm.DB
	secret string
}

func New(db *gorm.DB, secret string) *Service { return &Service{db: db, secret: secret} }

func hashPassword(pw string) string {
	sum := sha256.Sum256([]byte(pw))
	return hex.EncodeToString(sum[:])
}

func (s *Service) Register(phone, password string) (*entities.User, error) {
	if phone == "" || password == "" {
		return nil, apperr.New(apperr.Validation, "phone and password are required")
	}
	u := &entities.User{
		ID:           uuid.NewString(),
		Phone:        phone,
		PasswordHash: hashPassword(password),
	}
	if err := s.db.Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.New(apperr.Validation, "this phone number is already registered")
		}
		return nil, apperr.Wrap(apperr.Store, "create user", err)
	}
	return u, nil
}

func (s *Service) Login(phone, password string) (*entities.User, string, error) {
	var u entities.User
	err := s.db.First(&u, "phone = ?", phone).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", apperr.New(apperr.Validation, "incorrect phone number or password")
	}
	if err != nil {
		return nil, "", apperr.Wrap(apperr.Store, "load user", err)
	}
	if u.PasswordHash != hashPassword(password) {
		return nil, "", apperr.New(apperr.Validation, "incorrect phone number or password")
	}
	tok, err := s.issueToken(&u)
	if err != nil {
		return nil, "", err
	}
	return &u, tok, nil
}

// DemoLogin returns the shared demo account, creating it on first use.
func (s *Service) DemoLogin() (*entities.User, string, error) {
	var u entities.User
	err := s.db.First(&u, "phone = ?", "demo").Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		u = entities.User{
			ID:           uuid.NewString(),
			Phone:        "demo",
			PasswordHash: hashPassword("demo123"),
			IsDemo:       true,
		}
		if err := s.db.Create(&u).Error; err != nil {
			return nil, "", apperr.Wrap(apperr.Store, "create demo user", err)
		}
	} else if err != nil {
		return nil, "", apperr.Wrap(apperr.Store, "load demo user", err)
	}
	tok, err := s.issueToken(&u)
	if err != nil {
		return nil, "", err
	}
	return &u, tok, nil
}
