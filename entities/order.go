package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus int16

const (
	OrderPlanned   OrderStatus = 0
	OrderPending   OrderStatus = 1
	OrderCompleted OrderStatus = 2
	OrderShipped   OrderStatus = 3
	OrderDelay     OrderStatus = 4
)

func (s OrderStatus) String() string {
	switch s {
	case OrderPending:
		return "Pending"
	case OrderCompleted:
		return "Completed"
	case OrderShipped:
		return "Shipped"
	case OrderDelay:
		return "Delay"
	default:
		return "Planned"
	}
}

// PLStatus is the pallet-level collection status. Canceled sorts above
// Delivered but never counts as progress.
type PLStatus int16

const (
	PLNone      PLStatus = 0
	PLCollected PLStatus = 1
	PLExported  PLStatus = 2
	PLDelivered PLStatus = 3
	PLCanceled  PLStatus = 4
)

// Reached reports whether the pallet is at or past milestone.
func (s PLStatus) Reached(milestone PLStatus) bool {
	return s != PLCanceled && s >= milestone
}

type Order struct {
	UId              uuid.UUID     `gorm:"column:uid;type:char(36);primaryKey" json:"uid"`
	CustomerCode     string        `gorm:"size:50;index" json:"customer_code"`
	ShipDate         time.Time     `gorm:"index" json:"ship_date"`
	StartTime        time.Time     `json:"start_time"`
	EndTime          time.Time     `json:"end_time"`
	AcStartTime      *time.Time    `json:"ac_start_time"`
	AcEndTime        *time.Time    `json:"ac_end_time"`
	OrderStatus      OrderStatus   `gorm:"index" json:"order_status"`
	ApiOrderStatus   int16         `json:"api_order_status"`
	DelayStartTime   *time.Time    `json:"delay_start_time"`
	DelayTime        *float64      `json:"delay_time"` // hours
	IsAdvance        bool          `json:"is_advance"`
	AdvanceStartTime *time.Time    `json:"advance_start_time"`
	AdvanceEndTime   *time.Time    `json:"advance_end_time"`
	TotalPallet      int           `json:"total_pallet"`
	TotalColumn      int           `json:"total_column"`
	TransCd          string        `gorm:"size:50" json:"trans_cd"`
	TransMethod      int           `json:"trans_method"`
	ContSize         int           `json:"cont_size"`
	OrderDetails     []OrderDetail `gorm:"foreignKey:OId;references:UId;constraint:OnDelete:CASCADE" json:"order_details,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

func (o *Order) BeforeCreate(*gorm.DB) error {
	if o.UId == uuid.Nil {
		o.UId = uuid.New()
	}
	return nil
}

type OrderDetail struct {
	UId            uuid.UUID      `gorm:"column:uid;type:char(36);primaryKey" json:"uid"`
	OId            uuid.UUID      `gorm:"column:oid;type:char(36);index" json:"oid"`
	PartNo         string         `gorm:"size:100" json:"part_no"`
	PalletSize     string         `gorm:"size:50" json:"pallet_size"`
	Quantity       int            `json:"quantity"`
	TotalPallet    int            `json:"total_pallet"`
	Warehouse      string         `gorm:"size:50" json:"warehouse"`
	ContNo         string         `gorm:"size:50" json:"cont_no"`
	BookContStatus int16          `json:"book_cont_status"`
	ShoppingLists  []ShoppingList `gorm:"foreignKey:ODId;references:UId;constraint:OnDelete:CASCADE" json:"shopping_lists,omitempty"`
}

func (d *OrderDetail) BeforeCreate(*gorm.DB) error {
	if d.UId == uuid.Nil {
		d.UId = uuid.New()
	}
	return nil
}

type ShoppingList struct {
	UId             uuid.UUID  `gorm:"column:uid;type:char(36);primaryKey" json:"uid"`
	ODId            uuid.UUID  `gorm:"column:odid;type:char(36);index" json:"odid"`
	PalletNo        int        `json:"pallet_no"`
	PLStatus        PLStatus   `json:"pl_status"`
	CollectedDate   *time.Time `json:"collected_date"`
	ThreePointCheck *time.Time `json:"three_point_check"`
}

func (s *ShoppingList) BeforeCreate(*gorm.DB) error {
	if s.UId == uuid.Nil {
		s.UId = uuid.New()
	}
	return nil
}
