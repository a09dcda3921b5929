package configs

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// AppConfig uygulamanın ortam değişkenlerinden okunan ayarlarıdır.
type AppConfig struct {
	Env      string `envconfig:"APP_ENV" default:"development"`
	Port     string `envconfig:"APP_PORT" default:"3000"`
	BaseURL  string `envconfig:"BASE_URL" default:"http://localhost:3000"`
	SiteName string `envconfig:"SITE_NAME" default:"Tıkla Bakım"`
	ViewsDir string `envconfig:"VIEWS_DIR" default:"./views"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"tiklabakim"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	DBTimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Istanbul"`

	JWTSecret     string `envconfig:"JWT_SECRET" required:"true"`
	SessionCookie string `envconfig:"SESSION_COOKIE" default:"session"`

	UploadDir      string `envconfig:"UPLOAD_DIR" default:"./uploads"`
	UploadMaxBytes int64  `envconfig:"UPLOAD_MAX_BYTES" default:"5242880"`

	SystemAdminEmail    string `envconfig:"SYSTEM_ADMIN_EMAIL" default:"admin@tiklabakim.com"`
	SystemAdminPassword string `envconfig:"SYSTEM_ADMIN_PASSWORD"`
}

// IsProduction üretim ortamında çalışılıp çalışılmadığını döndürür.
func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// DSN Postgres bağlantı cümlesini üretir.
func (c AppConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode, c.DBTimeZone)
}

// LoadConfig .env dosyasını (varsa) yükler ve ayarları ortamdan okur.
func LoadConfig() (AppConfig, error) {
	// .env yoksa ortam değişkenleri doğrudan kullanılır.
	_ = godotenv.Load()

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("ayarlar okunamadı: %w", err)
	}
	return cfg, nil
}
