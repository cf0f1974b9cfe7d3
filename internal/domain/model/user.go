package model

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password_hash;not null"`
	Phone        string `gorm:"type:varchar(13)"`
	Role         Role   `gorm:"type:varchar(10);not null;default:'user'"`
	TokenVersion int    `gorm:"not null;default:0"`
	IsActive     bool   `gorm:"not null"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// usecaseに渡す「いま操作している人」
// HTTPのcontextに依存せず、IDと管理者フラグだけを持つ
type Actor struct {
	UserID  int64
	IsAdmin bool
}

func NewActor(userID int64, role Role) Actor {
	return Actor{UserID: userID, IsAdmin: role == RoleAdmin}
}

// 認証済みか
func (a Actor) Authenticated() bool {
	return a.UserID > 0
}
