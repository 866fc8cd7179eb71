package model

import "time"

// 認証用のユーザー（identity）
// 業務上の属性はProfileに持たせる。
type User struct {
	ID                    string     `json:"id" gorm:"type:uuid;primaryKey"`
	Email                 string     `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash          string     `json:"-" gorm:"column:password_hash;not null"`
	ConfirmationTokenHash string     `json:"-" gorm:"column:confirmation_token_hash;type:varchar(128);index"`
	EmailConfirmedAt      *time.Time `json:"email_confirmed_at"`
	LastSignInAt          *time.Time `json:"last_sign_in_at"`
	CreatedAt             time.Time  `json:"created_at" gorm:"not null"`
	UpdatedAt             time.Time  `json:"updated_at" gorm:"not null"`
}

func (u User) EmailConfirmed() bool {
	return u.EmailConfirmedAt != nil
}
