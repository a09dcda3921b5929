package main

import (
	"flag"
	"os"

	"tiklabakim.com/configs"
	"tiklabakim.com/configs/configsdatabase"
	"tiklabakim.com/configs/configslog"
	"tiklabakim.com/database"

	"go.uber.org/zap"
)

func main() {
	migrateFlag := flag.Bool("migrate", false, "Veritabanı başlatma işlemini çalıştır (migrasyonları içerir)")
	seedFlag := flag.Bool("seed", false, "Veritabanı başlatma işlemini çalıştır (seederları içerir)")
	flag.Parse()

	cfg, err := configs.LoadConfig()
	if err != nil {
		panic(err)
	}
	configslog.InitLogger(cfg.Env)
	defer configslog.SyncLogger()

	configsdatabase.InitDB(cfg)
	defer configsdatabase.CloseDB()

	configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
	err = database.Initialize(configsdatabase.GetDB(), *migrateFlag, *seedFlag, database.SeedOptions{
		AdminEmail:    cfg.SystemAdminEmail,
		AdminPassword: cfg.SystemAdminPassword,
	})
	if err != nil {
		configslog.Log.Error("Veritabanı başlatma işlemi başarısız", zap.Error(err))
		configslog.SyncLogger()
		os.Exit(1)
	}
	configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
}
