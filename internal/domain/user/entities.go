package user

import "time"

type User struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"id"`
	Username     string    `gorm:"size:150;uniqueIndex:ux_users_username" json:"username"`
	Email        string    `gorm:"size:254" json:"email"`
	PasswordHash string    `gorm:"size:128" json:"-"`
	IsStaff      bool      `gorm:"default:false" json:"is_staff"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string { return "users" }

// CurrentUser is the authenticated caller as resolved by the access
// gateway. Handlers and usecases never see credentials, only this.
type CurrentUser struct {
	ID       uint64
	Username string
	IsStaff  bool
}
