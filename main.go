package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/captcha"
	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/config"
	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/database"
	"github.com/Escobar-Freddy/Programacion-WEB-III/internal/router"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		log.Fatalf("create data dir: %v", err)
	}

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	// run migrations and seed the first admin
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}
	if err := database.Seed(db, cfg.Security); err != nil {
		log.Fatalf("seed database: %v", err)
	}

	// captcha store shared by /captcha and /login
	var captchaOpts []captcha.Option
	if cfg.Captcha.TTLMinutes > 0 {
		captchaOpts = append(captchaOpts,
			captcha.WithTTL(time.Duration(cfg.Captcha.TTLMinutes)*time.Minute))
	}
	if cfg.Captcha.TextLength > 0 {
		captchaOpts = append(captchaOpts, captcha.WithTextLength(cfg.Captcha.TextLength))
	}
	captchas := captcha.NewStore(captchaOpts...)

	// setup router
	r := router.SetupRouter(cfg, db, captchas)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
