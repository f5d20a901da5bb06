package model

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/base64"
)

// Principal holds the password of a subject that logs in against the
// server's own user database.
type Principal struct {
	ID        int    `gorm:"column:id;primaryKey"`
	Principal string `gorm:"column:principal;uniqueIndex;not null"`
	Password  string `gorm:"column:password;not null"`
}

func (Principal) TableName() string {
	return "rhq_principal"
}

// HashPassword returns the stored form of a password: the base64 encoded
// MD5 digest used by existing RHQ installations.
func HashPassword(password string) string {
	sum := md5.Sum([]byte(password))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// Matches compares password against the stored hash in constant time.
func (p Principal) Matches(password string) bool {
	return subtle.ConstantTimeCompare([]byte(p.Password), []byte(HashPassword(password))) == 1
}
