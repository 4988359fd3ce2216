package model

import (
	"time"

	"github.com/google/uuid"

	"supervisiku_backend/internals/constants"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName  string    `gorm:"size:50;uniqueIndex;not null" json:"user_name"`
	FullName  string    `gorm:"size:150" json:"full_name"`
	Email     string    `gorm:"size:255;unique" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	GoogleID  *string   `gorm:"size:255;unique" json:"google_id,omitempty"`
	Role      string    `gorm:"type:varchar(20);not null;default:'perawat'" json:"role"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues memastikan nilai default sebelum simpan
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = constants.RolePerawat
	}
}

// DisplayName: urutan fallback nama untuk laporan (full name → username)
func (u *UserModel) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.UserName
}
