package configslog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log yapılandırılmış (structured) loglama için kullanılır.
// SLog ise printf tarzı bilgi mesajları içindir.
// InitLogger çağrılmadan önce ikisi de no-op'tur; testler ve araçlar güvenle kullanabilir.
var (
	Log  = zap.NewNop()
	SLog = Log.Sugar()
)

// InitLogger ortam değişkenine göre zap logger'ını kurar.
func InitLogger(env string) {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := cfg.Build(zap.AddCaller())
	if err != nil {
		panic("Logger başlatılamadı: " + err.Error())
	}
	Log = logger
	SLog = logger.Sugar()
	SLog.Infof("Logger başlatıldı (ortam: %s)", env)
}

// SyncLogger tamponlanmış log kayıtlarını boşaltır.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
