package router

import (
	"net/http"

	"droidsweep/backend/app/controllers"
)

func NewRouter(
	httpCtrl *controllers.HTTPController,
	termCtrl *controllers.TerminalController,
	logCtrl *controllers.LogController,
	actionCtrl *controllers.ActionController,
	deviceCtrl *controllers.DeviceController,
	reconcileCtrl *controllers.ReconcileController,
	auditCtrl *controllers.AuditController,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/ping", httpCtrl.Ping)
	mux.HandleFunc("/demo", httpCtrl.Demo)

	// terminal + command log
	mux.HandleFunc("/terminal/command", termCtrl.Run)
	mux.HandleFunc("/settings/dns", termCtrl.SetDNS)
	mux.HandleFunc("/log", logCtrl.List)
	mux.HandleFunc("/log/download", logCtrl.Download)
	mux.HandleFunc("/log/clear", logCtrl.Clear)

	// package toggles + durable action history
	mux.HandleFunc("/packages/toggle", actionCtrl.Toggle)
	mux.HandleFunc("/actions", actionCtrl.List)
	mux.HandleFunc("/actions/user", actionCtrl.ListByUser)
	mux.HandleFunc("/actions/restore", actionCtrl.RestoreAll)

	// devices
	mux.HandleFunc("/devices", deviceCtrl.List)
	mux.HandleFunc("/devices/register", deviceCtrl.RegisterOrUpdate)

	// update reconciliation
	mux.HandleFunc("/reconcile/detect", reconcileCtrl.Detect)
	mux.HandleFunc("/reconcile/resolve", reconcileCtrl.Resolve)
	mux.HandleFunc("/reconcile/dismiss", reconcileCtrl.Dismiss)

	// mobile audits
	mux.HandleFunc("/audits/pending", auditCtrl.Pending)
	mux.HandleFunc("/audits/apply", auditCtrl.Apply)

	return mux
}
