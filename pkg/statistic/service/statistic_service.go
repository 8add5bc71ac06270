package service

import (
	"context"
	"time"
)

// Query is a parsed statistics request. From and To are calendar dates;
// To is inclusive. IncludeAll drops the date window.
type Query struct {
	From       time.Time
	To         time.Time
	Customers  []string
	IncludeAll bool
}

type Overview struct {
	TotalOrders       int     `json:"totalOrders"`
	Shipped           int     `json:"shipped"`
	Pending           int     `json:"pending"`
	DelayedOrders     int     `json:"delayedOrders"`
	AdvanceOrders     int     `json:"advanceOrders"`
	TotalDelayMinutes float64 `json:"totalDelayMinutes"`
}

type CustomerOverview struct {
	CustomerCode string `json:"customerCode"`
	Overview
}

type Dataset struct {
	Label string `json:"label"`
	Data  []int  `json:"data"`
}

type MonthlySeries struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type CustomerOrderStats struct {
	CustomerCode string `json:"CustomerCode"`
	Plan         int    `json:"Plan"`
	Progress     int    `json:"Progress"`
	Completed    int    `json:"Completed"`
	Delay        int    `json:"Delay"`
	Advance      int    `json:"Advance"`
}

type StatisticService interface {
	Overview(ctx context.Context, q Query) (*Overview, error)
	OverviewByCustomers(ctx context.Context, q Query) ([]CustomerOverview, error)
	MonthlyByCustomers(ctx context.Context, q Query) (*MonthlySeries, error)
	OrderStatistics(ctx context.Context) ([]CustomerOrderStats, error)
}
