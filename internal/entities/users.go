package entities

import "time"

type Role struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:100;not null"`
	CreatedAt time.Time
}

// User optionally holds a role. Deleting the role deletes the user.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"uniqueIndex;size:100;not null"`
	Email     string `gorm:"size:255"`
	RoleID    *uint  `gorm:"index"`
	Role      *Role  `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Role) TableName() string {
	return "roles"
}

func (User) TableName() string {
	return "users"
}
