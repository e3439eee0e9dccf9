package dbmysql

import (
	"time"
)

// WorkExperience is one employment entry on a user's profile.
type WorkExperience struct {
	ID        uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64     `gorm:"column:user_id;not null;index" json:"user_id"`
	Company   string     `gorm:"column:company;size:100;not null" json:"company"`
	Role      string     `gorm:"column:role;size:100;not null" json:"role"`
	Location  string     `gorm:"column:location;size:100" json:"location"`
	StartDate *time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate   *time.Time `gorm:"column:end_date" json:"end_date"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// Education is one schooling entry on a user's profile.
type Education struct {
	ID          uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint64     `gorm:"column:user_id;not null;index" json:"user_id"`
	Institution string     `gorm:"column:institution;size:100;not null" json:"institution"`
	Degree      string     `gorm:"column:degree;size:100" json:"degree"`
	Major       string     `gorm:"column:major;size:100" json:"major"`
	StartDate   *time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate     *time.Time `gorm:"column:end_date" json:"end_date"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
