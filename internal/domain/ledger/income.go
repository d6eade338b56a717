package ledger

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Income struct {
	Id          ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	UserId      ulid.ULID `gorm:"type:varchar(26);index:idx_incomes_user_id;not null" json:"userId"`
	Category    string    `gorm:"type:varchar(100);not null" json:"category"`
	Description string    `gorm:"type:varchar(255)" json:"description"`
	Account     string    `gorm:"type:varchar(100)" json:"account"`
	Amount      float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date        time.Time `gorm:"index:idx_incomes_date;not null" json:"date"`
	Tags        []string  `gorm:"serializer:json" json:"tags"`
	CreatedAt   time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Income) TableName() string {
	return "incomes"
}
