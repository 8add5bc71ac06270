package delay

import (
	"errors"
	"time"
)

// Input records one delay (or advance) against an order.
type Input struct {
	StartTime *time.Time `json:"startTime"` // defaults to now
	Hours     float64    `json:"hours"`
	Reason    string     `json:"reason"`
	DelayType string     `json:"delayType"`
	IsAdvance bool       `json:"isAdvance"`
}

var (
	ErrHours  = errors.New("hours must be greater than zero")
	ErrReason = errors.New("reason is required")
)

func (in Input) Validate() error {
	if in.Hours <= 0 {
		return ErrHours
	}
	if in.Reason == "" {
		return ErrReason
	}
	return nil
}
