package models

import "time"

type Salon struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Address string `gorm:"size:255" json:"address"`
	Mobile  string `gorm:"size:20" json:"mobile"`

	Users []User `gorm:"foreignKey:SalonID" json:"users,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
