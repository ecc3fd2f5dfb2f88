// Package domain contains core types for the auth service.
package domain

// User is a registered account. Username is the login name and token subject.
type User struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Username       string `gorm:"type:varchar(150);not null;uniqueIndex:ux_users_username"`
	Email          string `gorm:"type:text;not null"`
	HashedPassword string `gorm:"column:hashed_password;type:text;not null"`
}

// TableName sets the database table name.
func (User) TableName() string { return "users" }
