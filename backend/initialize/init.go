package initialize

import (
	"context"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"

	"droidsweep/backend/app/audit"
	"droidsweep/backend/app/cmdlog"
	"droidsweep/backend/app/controllers"
	"droidsweep/backend/app/db"
	"droidsweep/backend/app/gateway"
	"droidsweep/backend/app/middleware"
	"droidsweep/backend/app/models"
	"droidsweep/backend/app/reconcile"
	"droidsweep/backend/app/repo"
	"droidsweep/backend/app/services"
	"droidsweep/backend/config"
	"droidsweep/backend/global"
	"droidsweep/backend/router"
	"droidsweep/bridge"
)

var demoPackages = []string{
	"com.android.chrome",
	"com.vendor.weather",
	"com.vendor.gamehub",
	"com.vendor.assistant",
	"com.carrier.portal",
}

type App struct {
	Cfg       *config.Config
	Router    http.Handler
	Log       *cmdlog.Store
	Gateway   *gateway.Gateway
	Toggles   *services.ToggleService
	Actions   *services.ActionService
	Devices   *services.DeviceService
	Audits    *services.AuditService
	Reconcile *reconcile.Engine
	AuditEng  *audit.Engine
	Watcher   *audit.Watcher
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	gdb, err := db.Connect(db.Config{Host: cfg.DB.Host, Port: cfg.DB.Port, User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if err := gdb.AutoMigrate(&models.Device{}, &models.UserAction{}, &models.MobileAudit{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// redis is optional; without it ack suppression lives in memory
	var acks reconcile.AckStore = reconcile.NewMemoryAckStore()
	if cfg.Redis.Addr != "" {
		global.Rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		acks = reconcile.NewRedisAckStore(global.Rdb)
	}

	// with console.demo the whole process runs against a scripted device;
	// every log entry is then uniformly simulated
	var transport bridge.Transport
	if cfg.Demo {
		transport = bridge.NewDemo(demoPackages)
		global.Logger.Info().Msg("running against simulated device")
	} else {
		adb := bridge.NewADB(cfg.ADB.Bin, cfg.ADB.Serial)
		global.Logger.Info().Str("state", string(adb.State(context.Background()))).Msg("adb device state")
		transport = adb
	}

	// Core
	logStore := cmdlog.NewStore(cfg.LogCap)
	gw := gateway.New(transport, logStore)

	// Services
	actionRepo := repo.NewUserActionRepository(gdb)
	deviceRepo := repo.NewDeviceRepository(gdb)
	auditRepo := repo.NewMobileAuditRepository(gdb)
	actionSvc := services.NewActionService(actionRepo, deviceRepo)
	deviceSvc := services.NewDeviceService(deviceRepo)
	auditSvc := services.NewAuditService(auditRepo)
	toggleSvc := services.NewToggleService(gw, actionSvc)

	// Engines
	reconcileEng := reconcile.NewEngine(transport, toggleSvc, actionSvc, acks, cfg.StepDelay)
	auditEng := audit.NewEngine(auditSvc, toggleSvc, cfg.StepDelay)
	watcher, err := audit.NewWatcher(cfg.Audit.WatchDir, auditSvc)
	if err != nil {
		return nil, fmt.Errorf("audit watcher: %w", err)
	}

	// Controllers
	httpCtrl := controllers.NewHTTPController()
	termCtrl := controllers.NewTerminalController(gw)
	logCtrl := controllers.NewLogController(logStore)
	actionCtrl := controllers.NewActionController(actionSvc, toggleSvc, cfg.StepDelay)
	deviceCtrl := controllers.NewDeviceController(deviceSvc)
	reconcileCtrl := controllers.NewReconcileController(reconcileEng)
	auditCtrl := controllers.NewAuditController(auditEng, auditSvc)

	h := router.NewRouter(httpCtrl, termCtrl, logCtrl, actionCtrl, deviceCtrl, reconcileCtrl, auditCtrl)
	h = middleware.Logging(h)

	return &App{
		Cfg:       cfg,
		Router:    h,
		Log:       logStore,
		Gateway:   gw,
		Toggles:   toggleSvc,
		Actions:   actionSvc,
		Devices:   deviceSvc,
		Audits:    auditSvc,
		Reconcile: reconcileEng,
		AuditEng:  auditEng,
		Watcher:   watcher,
	}, nil
}
