package model

import "time"

// UserModel mirrors the 'users' table. SQLite assigns the integer primary key
// on insert. The unique index on email is the storage-level guarantee that
// concurrent signups cannot create duplicate accounts.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password;not null"`
	Name         string `gorm:"default:''"`
	Mobile       string `gorm:"default:''"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
