package model

import "time"

// 会員。パスワードはbcryptハッシュのみ保存（平文は保存しない）。
// レスポンスに載せる前に必ずPasswordを空にする。
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"type:varchar(255)" json:"name"`
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Password string `gorm:"type:varchar(255);not null" json:"password,omitempty"`
	Address  string `gorm:"type:varchar(255)" json:"address"`
	Phone    string `gorm:"type:varchar(30)" json:"phone"`

	// ロール（初期はROLE_USERのみ）
	Roles []string `gorm:"serializer:json" json:"roles"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

const RoleUser = "ROLE_USER"
