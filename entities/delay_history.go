package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DelayHistory is an append-only record of one delay or advance applied to
// an order. Rows are never updated.
type DelayHistory struct {
	UId       uuid.UUID `gorm:"column:uid;type:char(36);primaryKey" json:"uid"`
	OId       uuid.UUID `gorm:"column:oid;type:char(36);index" json:"oid"`
	StartTime time.Time `gorm:"index" json:"start_time"`
	DelayTime float64   `json:"delay_time"` // hours
	Reason    string    `json:"reason"`
	DelayType string    `gorm:"size:50" json:"delay_type"`
	IsAdvance bool      `json:"is_advance"`
	CreatedAt time.Time `json:"created_at"`
}

func (DelayHistory) TableName() string { return "delay_histories" }

func (h *DelayHistory) BeforeCreate(*gorm.DB) error {
	if h.UId == uuid.Nil {
		h.UId = uuid.New()
	}
	return nil
}

// EndTime is StartTime shifted by DelayTime hours.
func (h DelayHistory) EndTime() time.Time {
	return h.StartTime.Add(Hours(h.DelayTime))
}

// Hours converts a fractional hour count to a duration.
func Hours(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}
