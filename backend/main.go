package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"droidsweep/backend/global"
	"droidsweep/backend/initialize"
	"droidsweep/backend/server"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("build failed")
	}

	app.Watcher.Start()
	defer app.Watcher.Stop()

	if err := server.StartHTTPServer(app.Cfg.HTTP.Host, app.Cfg.HTTP.Port, app.Router); err != nil {
		global.Logger.Fatal().Err(err).Msg("http server failed")
	}
	global.Logger.Info().Str("host", app.Cfg.HTTP.Host).Int("port", app.Cfg.HTTP.Port).Msg("droidsweep console listening")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	global.Logger.Info().Msg("shutting down")
}
