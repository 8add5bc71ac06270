package entities

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Customer struct {
	CustomerCode string    `gorm:"primaryKey;size:50" json:"customer_code"`
	CustomerName string    `gorm:"size:200" json:"customer_name"`
	Descriptions string    `json:"descriptions"`
	CreatedBy    string    `gorm:"size:100" json:"created_by"`
	UpdatedBy    string    `gorm:"size:100" json:"updated_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LeadtimeMaster holds per-pallet handling durations (minutes) for one
// customer and transport code.
type LeadtimeMaster struct {
	ID                   uint            `gorm:"primaryKey" json:"id"`
	CustomerCode         string          `gorm:"size:50;uniqueIndex:ux_leadtime_key" json:"customer_code"`
	TransCd              string          `gorm:"size:50;uniqueIndex:ux_leadtime_key" json:"trans_cd"`
	CollectTimePerPallet decimal.Decimal `gorm:"type:decimal(12,4)" json:"collect_time_per_pallet"`
	PrepareTimePerPallet decimal.Decimal `gorm:"type:decimal(12,4)" json:"prepare_time_per_pallet"`
	LoadingTimePerColumn decimal.Decimal `gorm:"type:decimal(12,4)" json:"loading_time_per_column"`
	CreatedBy            string          `gorm:"size:100" json:"created_by"`
	UpdatedBy            string          `gorm:"size:100" json:"updated_by"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// ShippingSchedule is the loading cut-off for one customer, transport code
// and weekday. Weekday follows time.Weekday (Sunday=0).
type ShippingSchedule struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CustomerCode string         `gorm:"size:50;uniqueIndex:ux_schedule_key" json:"customer_code"`
	TransCd      string         `gorm:"size:50;uniqueIndex:ux_schedule_key" json:"trans_cd"`
	Weekday      time.Weekday   `gorm:"uniqueIndex:ux_schedule_key" json:"weekday"`
	CutOffTime   datatypes.Time `json:"cut_off_time"`
	Description  string         `json:"description"`
	CreatedBy    string         `gorm:"size:100" json:"created_by"`
	UpdatedBy    string         `gorm:"size:100" json:"updated_by"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// SameDurations reports whether all three durations equal other's.
func (l LeadtimeMaster) SameDurations(other LeadtimeMaster) bool {
	return l.CollectTimePerPallet.Equal(other.CollectTimePerPallet) &&
		l.PrepareTimePerPallet.Equal(other.PrepareTimePerPallet) &&
		l.LoadingTimePerColumn.Equal(other.LoadingTimePerColumn)
}
