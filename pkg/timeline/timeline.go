// Package timeline derives calendar data from orders: pallet progress,
// delay and advance intervals, and whether a delay has run out.
// Everything here is pure; callers pass the current time.
package timeline

import (
	"time"

	"wms/entities"
)

// Counts is cumulative pallet progress. A pallet counts toward every
// milestone it has reached; canceled pallets count toward none.
type Counts struct {
	Collected int `json:"collected"`
	Prepared  int `json:"prepared"`
	Loaded    int `json:"loaded"`
	Active    int `json:"active"` // pallets not canceled
}

func (c *Counts) add(sl entities.ShoppingList) {
	if sl.PLStatus == entities.PLCanceled {
		return
	}
	c.Active++
	if sl.PLStatus.Reached(entities.PLCollected) {
		c.Collected++
	}
	if sl.PLStatus.Reached(entities.PLExported) {
		c.Prepared++
	}
	if sl.PLStatus.Reached(entities.PLDelivered) {
		c.Loaded++
	}
}

func CountLists(lists []entities.ShoppingList) Counts {
	var c Counts
	for _, sl := range lists {
		c.add(sl)
	}
	return c
}

func CountOrder(o entities.Order) Counts {
	var c Counts
	for _, d := range o.OrderDetails {
		for _, sl := range d.ShoppingLists {
			c.add(sl)
		}
	}
	return c
}

// DelayEnd is DelayStartTime plus DelayTime hours; ok is false when the
// order carries no usable delay.
func DelayEnd(o entities.Order) (time.Time, bool) {
	if o.DelayStartTime == nil || o.DelayTime == nil || *o.DelayTime <= 0 {
		return time.Time{}, false
	}
	return o.DelayStartTime.Add(entities.Hours(*o.DelayTime)), true
}

// DelayElapsed reports whether o is in Delay status with a delay that ended
// before now. Such an order needs its status re-evaluated.
func DelayElapsed(o entities.Order, now time.Time) bool {
	if o.OrderStatus != entities.OrderDelay {
		return false
	}
	end, ok := DelayEnd(o)
	return ok && end.Before(now)
}

// NextStatus is the status o should hold given its pallet progress. A
// Shipped order stays shipped and a Delay that is still running is kept.
func NextStatus(o entities.Order, now time.Time) entities.OrderStatus {
	switch {
	case o.OrderStatus == entities.OrderShipped:
		return o.OrderStatus
	case o.OrderStatus == entities.OrderDelay && !DelayElapsed(o, now):
		return o.OrderStatus
	}
	c := CountOrder(o)
	switch {
	case c.Active > 0 && c.Loaded == c.Active:
		return entities.OrderCompleted
	case c.Collected > 0:
		return entities.OrderPending
	default:
		return entities.OrderPlanned
	}
}

type Interval struct {
	Start     time.Time `json:"Start"`
	End       time.Time `json:"End"`
	DelayTime float64   `json:"DelayTime"`
	Reason    string    `json:"Reason"`
	DelayType string    `json:"DelayType"`
	IsAdvance bool      `json:"IsAdvance"`
}

// Intervals maps every history entry, past or future, to its span.
func Intervals(hist []entities.DelayHistory) []Interval {
	out := make([]Interval, 0, len(hist))
	for _, h := range hist {
		out = append(out, Interval{
			Start:     h.StartTime,
			End:       h.EndTime(),
			DelayTime: h.DelayTime,
			Reason:    h.Reason,
			DelayType: h.DelayType,
			IsAdvance: h.IsAdvance,
		})
	}
	return out
}

type AdvanceEvent struct {
	ID        string    `json:"id"`
	UId       string    `json:"UId"`
	Resource  string    `json:"Resource"`
	Start     time.Time `json:"Start"`
	End       time.Time `json:"End"`
	Title     string    `json:"Title"`
	IsAdvance bool      `json:"IsAdvance"`
}

// AdvanceEvents prefers the order's own advance window; only when the order
// has none are history entries flagged IsAdvance used.
func AdvanceEvents(o entities.Order, hist []entities.DelayHistory) []AdvanceEvent {
	uid := o.UId.String()
	if o.IsAdvance && o.AdvanceStartTime != nil {
		end := *o.AdvanceStartTime
		if o.AdvanceEndTime != nil {
			end = *o.AdvanceEndTime
		}
		return []AdvanceEvent{{
			ID:        "advance-" + uid,
			UId:       uid,
			Resource:  o.CustomerCode,
			Start:     *o.AdvanceStartTime,
			End:       end,
			Title:     "Advance",
			IsAdvance: true,
		}}
	}
	var out []AdvanceEvent
	for _, h := range hist {
		if !h.IsAdvance {
			continue
		}
		out = append(out, AdvanceEvent{
			ID:        "advance-" + uid + "-" + h.UId.String(),
			UId:       uid,
			Resource:  o.CustomerCode,
			Start:     h.StartTime,
			End:       h.EndTime(),
			Title:     "Advance",
			IsAdvance: true,
		})
	}
	return out
}
