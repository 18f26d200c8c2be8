package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Host string
	Port int
	User string
	Pass string
	Name string
}

type Redis struct {
	Addr string
	DB   int
}

type ADB struct {
	Bin    string
	Serial string
}

type Audit struct {
	WatchDir string
}

type Config struct {
	HTTP      HTTP
	DB        DB
	Redis     Redis
	ADB       ADB
	Audit     Audit
	Demo      bool
	LogCap    int
	StepDelay time.Duration
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("console.host", "127.0.0.1")
	v.SetDefault("console.port", 9480)
	v.SetDefault("console.db.host", "127.0.0.1")
	v.SetDefault("console.db.port", 3306)
	v.SetDefault("console.db.user", "root")
	v.SetDefault("console.db.pass", "")
	v.SetDefault("console.db.name", "droidsweep")
	v.SetDefault("console.redis.addr", "")
	v.SetDefault("console.redis.db", 0)
	v.SetDefault("console.adb.bin", "adb")
	v.SetDefault("console.adb.serial", "")
	v.SetDefault("console.audit.watch_dir", "audits")
	v.SetDefault("console.demo", false)
	v.SetDefault("console.log_capacity", 500)
	v.SetDefault("console.step_delay_ms", 100)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("console.host"), Port: v.GetInt("console.port")},
		DB: DB{
			Host: v.GetString("console.db.host"),
			Port: v.GetInt("console.db.port"),
			User: v.GetString("console.db.user"),
			Pass: v.GetString("console.db.pass"),
			Name: v.GetString("console.db.name"),
		},
		Redis:     Redis{Addr: v.GetString("console.redis.addr"), DB: v.GetInt("console.redis.db")},
		ADB:       ADB{Bin: v.GetString("console.adb.bin"), Serial: v.GetString("console.adb.serial")},
		Audit:     Audit{WatchDir: v.GetString("console.audit.watch_dir")},
		Demo:      v.GetBool("console.demo"),
		LogCap:    v.GetInt("console.log_capacity"),
		StepDelay: time.Duration(v.GetInt("console.step_delay_ms")) * time.Millisecond,
	}
	if cfg.LogCap <= 0 {
		cfg.LogCap = 500
	}
	return cfg, nil
}
