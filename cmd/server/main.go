package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"wms/config"
	"wms/database"
	"wms/pkg/logger"
	"wms/router"

	// Customer / leadtime / schedule
	custCtrlImp "wms/pkg/customer/controllerImp"
	custRepoImp "wms/pkg/customer/repositoryImp"
	ltCtrlImp "wms/pkg/leadtime/controllerImp"
	ltRepoImp "wms/pkg/leadtime/repositoryImp"
	schedCtrlImp "wms/pkg/schedule/controllerImp"
	schedRepoImp "wms/pkg/schedule/repositoryImp"

	// Import
	"wms/pkg/importer"
	importCtrlImp "wms/pkg/importer/controllerImp"
	importSvcImp "wms/pkg/importer/serviceImp"

	// Orders
	orderCtrlImp "wms/pkg/order/controllerImp"
	orderRepoImp "wms/pkg/order/repositoryImp"
	orderSvcImp "wms/pkg/order/serviceImp"

	// Delays
	delayCtrlImp "wms/pkg/delay/controllerImp"
	delayRepoImp "wms/pkg/delay/repositoryImp"
	delaySvcImp "wms/pkg/delay/serviceImp"

	// Statistics
	statCtrlImp "wms/pkg/statistic/controllerImp"
	statRepoImp "wms/pkg/statistic/repositoryImp"
	statSvcImp "wms/pkg/statistic/serviceImp"

	// Health
	healthCtrlImp "wms/pkg/health/controllerImp"
)

func main() {
	// 1) Config + logging
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	logrus.WithFields(cfg.Fields()).Info("config loaded")

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logrus.WithError(err).Warnf("unknown TZ %q, using local time", cfg.Timezone)
		loc = time.Local
	}

	// 2) DB + automigrate
	db, err := database.Open(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("database")
	}

	vba, err := cfg.LoadVBAProject()
	if err != nil {
		logrus.WithError(err).Warn("template macro disabled")
	}

	// 3) Repos
	cRepo := custRepoImp.New(db)
	lRepo := ltRepoImp.New(db)
	sRepo := schedRepoImp.New(db)
	oRepo := orderRepoImp.New(db)
	odRepo := orderRepoImp.NewDetail(db)
	dhRepo := orderRepoImp.NewDelayHistory(db)

	// 4) Services
	rec := importer.NewReconciler(cRepo, lRepo, sRepo, cfg.ImportOperator)
	tpl := importer.NewTemplateBuilder(cRepo, lRepo, sRepo, vba)
	impSvc := importSvcImp.New(rec, tpl)
	oSvc := orderSvcImp.New(oRepo, odRepo, dhRepo, cRepo)
	stSvc := statSvcImp.New(statRepoImp.New(db), oRepo)
	dSvc := delaySvcImp.New(delayRepoImp.New(db))

	// 5) Router
	e := router.New(echo.New(), router.Handlers{
		Customers:  custCtrlImp.New(cRepo),
		Leadtimes:  ltCtrlImp.New(lRepo),
		Schedules:  schedCtrlImp.New(sRepo),
		Import:     importCtrlImp.New(impSvc, cfg.ImportMaxFileMB),
		Orders:     orderCtrlImp.New(oSvc, loc),
		Statistics: statCtrlImp.New(stSvc, loc),
		Health:     healthCtrlImp.NewHealthCtrl(db, tpl.MacroEnabled()),
		Extra:      []func(*echo.Group){delayCtrlImp.New(dSvc).Register},
	}, fmt.Sprintf("%dM", cfg.ImportMaxFileMB+1))

	// 6) Start + graceful stop
	go func() {
		logrus.Infof("listening on :%s", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server")
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("shutdown")
	}
}
