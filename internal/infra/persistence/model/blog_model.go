package model

import "time"

// BlogModel mirrors the 'blogs' table. IDs are plain auto-increment integers.
type BlogModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Title     string `gorm:"type:varchar(255);not null"`
	Body      string `gorm:"type:text;not null"`
	CreatorID *uint  `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Creator *UserModel `gorm:"foreignKey:CreatorID"`
}

// TableName explicitly sets the table name for GORM.
func (BlogModel) TableName() string {
	return "blogs"
}
