package model

import "time"

// 評価が未設定のときの表示値
const DefaultRating = 4.5

// ユーザーごとのプロフィール（ロールと事業者情報）
// IDはUser.IDと同じ。
type Profile struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey"`
	FullName     string    `json:"full_name" gorm:"type:varchar(255);not null"`
	Email        string    `json:"email" gorm:"type:varchar(255);not null"`
	Phone        string    `json:"phone" gorm:"type:varchar(30)"`
	Role         Role      `json:"role" gorm:"type:varchar(20);not null;index;check:role IN ('vendor','supplier')"`
	BusinessName string    `json:"business_name" gorm:"type:varchar(255)"`
	Address      string    `json:"address" gorm:"type:varchar(255)"`
	City         string    `json:"city" gorm:"type:varchar(100);index"`
	Rating       *float64  `json:"rating" gorm:"type:numeric(2,1)"`
	CreatedAt    time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"not null;autoUpdateTime"`
}

func (p Profile) EffectiveRating() float64 {
	if p.Rating == nil {
		return DefaultRating
	}
	return *p.Rating
}
