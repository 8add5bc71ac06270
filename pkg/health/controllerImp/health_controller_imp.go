package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"wms/entities"
)

var appStart = time.Now()

type HealthCtrl struct {
	db           *gorm.DB
	macroEnabled bool
}

func NewHealthCtrl(db *gorm.DB, macroEnabled bool) *HealthCtrl {
	return &HealthCtrl{db: db, macroEnabled: macroEnabled}
}

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

// Health pings the database and confirms the schema is in place. It answers
// 503 when either fails.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := h.pingDB(ctx)
	schema := check{OK: db.OK}
	if db.OK {
		m := h.db.WithContext(ctx).Migrator()
		for _, t := range []any{&entities.Customer{}, &entities.ShippingSchedule{}, &entities.Order{}} {
			if !m.HasTable(t) {
				schema = check{Err: "missing tables, run migrate"}
				break
			}
		}
	} else {
		schema.Err = "skipped"
	}

	allOK := db.OK && schema.OK
	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": db,
			"schema":   schema,
		},
		"template_macro": h.macroEnabled,
		"time":           time.Now().Format(time.RFC3339),
	})
}

func (h *HealthCtrl) pingDB(ctx context.Context) check {
	if h.db == nil {
		return check{Err: "gorm db is nil"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return check{Err: "db.DB(): " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return check{Err: "ping: " + err.Error()}
	}
	return check{OK: true}
}
