package models

import "time"

// SalonID is nil only for super admins; everyone else belongs to
// exactly one salon and is never moved between salons.
type User struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	SalonID *uint  `json:"salon_id"`
	Salon   *Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"salon,omitempty"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Mobile       string `gorm:"size:20" json:"mobile"`
	Role         string `gorm:"size:20;not null" json:"role"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	CreatedBy *uint `json:"created_by"`
	Creator   *User `gorm:"foreignKey:CreatedBy;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"creator,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
