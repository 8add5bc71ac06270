package timeline

import (
	"fmt"
	"math"

	"wms/entities"
)

const (
	StageNotStarted = "Not Started"
	StageCollecting = "Collecting"
	StagePreparing  = "Preparing"
	StageLoading    = "Loading"
	StageLoaded     = "Loaded"
)

// DetailProgress is the per-line progress shown in the order drawer.
type DetailProgress struct {
	UId            string  `json:"uid"`
	PartNo         string  `json:"partNo"`
	Quantity       int     `json:"quantity"`
	TotalPallet    int     `json:"totalPallet"`
	PalletSize     string  `json:"palletSize"`
	Warehouse      string  `json:"warehouse"`
	ContNo         string  `json:"contNo"`
	BookContStatus int16   `json:"bookContStatus"`
	CollectPercent float64 `json:"collectPercent"`
	PreparePercent float64 `json:"preparePercent"`
	LoadingPercent float64 `json:"loadingPercent"`
	CurrentStage   string  `json:"currentStage"`
	Status         string  `json:"status"`
}

// Detail computes percentages over the detail's non-canceled pallets.
func Detail(d entities.OrderDetail) DetailProgress {
	c := CountLists(d.ShoppingLists)
	p := DetailProgress{
		UId:            d.UId.String(),
		PartNo:         d.PartNo,
		Quantity:       d.Quantity,
		TotalPallet:    d.TotalPallet,
		PalletSize:     d.PalletSize,
		Warehouse:      d.Warehouse,
		ContNo:         d.ContNo,
		BookContStatus: d.BookContStatus,
		CollectPercent: percent(c.Collected, c.Active),
		PreparePercent: percent(c.Prepared, c.Active),
		LoadingPercent: percent(c.Loaded, c.Active),
	}
	switch {
	case c.Active > 0 && c.Loaded == c.Active:
		p.CurrentStage, p.Status = StageLoaded, entities.OrderCompleted.String()
	case c.Loaded > 0:
		p.CurrentStage, p.Status = StageLoading, entities.OrderPending.String()
	case c.Prepared > 0:
		p.CurrentStage, p.Status = StagePreparing, entities.OrderPending.String()
	case c.Collected > 0:
		p.CurrentStage, p.Status = StageCollecting, entities.OrderPending.String()
	default:
		p.CurrentStage, p.Status = StageNotStarted, entities.OrderPlanned.String()
	}
	return p
}

func percent(n, of int) float64 {
	if of == 0 {
		return 0
	}
	return math.Round(float64(n)*10000/float64(of)) / 100
}

// DelaySummary describes the shifted working window of a delayed order.
type DelaySummary struct {
	NewTimeRange string  `json:"newTimeRange"`
	DelayTime    float64 `json:"delayTime"`
	ApiStatus    int16   `json:"apiStatus"`
}

// Summary is nil unless o is in Delay status with a delay start. The window
// starts at the actual start when known and its end is pushed by the delay.
func Summary(o entities.Order) *DelaySummary {
	if o.OrderStatus != entities.OrderDelay || o.DelayStartTime == nil {
		return nil
	}
	var hours float64
	if o.DelayTime != nil {
		hours = *o.DelayTime
	}
	start, end := o.StartTime, o.EndTime
	if o.AcStartTime != nil {
		start = *o.AcStartTime
	}
	if o.AcEndTime != nil {
		end = *o.AcEndTime
	}
	end = end.Add(entities.Hours(hours))
	return &DelaySummary{
		NewTimeRange: fmt.Sprintf("%s - %s", start.Format("15:04:05"), end.Format("15:04:05")),
		DelayTime:    hours,
		ApiStatus:    o.ApiOrderStatus,
	}
}
