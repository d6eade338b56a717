package ledger

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Budget struct {
	Id        ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId    ulid.ULID `gorm:"type:varchar(26);index:idx_budgets_user_id;not null" json:"userId"`
	Category  string    `gorm:"type:varchar(100);index:idx_budgets_category;not null" json:"category"`
	Amount    float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Month     int       `gorm:"type:integer;not null;index:idx_budgets_period" json:"month"`
	Year      int       `gorm:"type:integer;not null;index:idx_budgets_period" json:"year"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Budget) TableName() string {
	return "budgets"
}
