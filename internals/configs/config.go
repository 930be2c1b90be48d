package configs

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const devSecretKey = "darulfatheh-dev-secret-change-me"

type MailConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	UseTLS      bool
	FromAddress string
	NotifyTo    string
}

// Enabled reports whether an SMTP host was configured.
func (m MailConfig) Enabled() bool { return strings.TrimSpace(m.Host) != "" }

type ImageConfig struct {
	MaxWidth  int
	MaxHeight int
	Quality   int
}

type Config struct {
	Port         string
	Debug        bool
	SecretKey    string
	DatabaseURL  string
	AllowedHosts []string
	StaticRoot   string
	MediaRoot    string
	RedisURL     string
	Mail         MailConfig
	Image        ImageConfig
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Info("⚠️ .env file not found, using system environment")
	} else {
		log.Info("✅ .env file loaded")
	}
}

// Load reads .env (when present) and the process environment into a Config.
func Load() *Config {
	LoadEnv()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	v.SetDefault("PORT", "3000")
	v.SetDefault("DEBUG", false)
	v.SetDefault("SECRET_KEY", "")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_SSLMODE", "require")
	v.SetDefault("ALLOWED_HOSTS", "localhost,127.0.0.1")
	v.SetDefault("STATIC_ROOT", "./static")
	v.SetDefault("MEDIA_ROOT", "./media")
	v.SetDefault("REDIS_URL", "")

	v.SetDefault("EMAIL_HOST", "")
	v.SetDefault("EMAIL_PORT", 587)
	v.SetDefault("EMAIL_HOST_USER", "")
	v.SetDefault("EMAIL_HOST_PASSWORD", "")
	v.SetDefault("EMAIL_USE_TLS", true)
	v.SetDefault("DEFAULT_FROM_EMAIL", "webmaster@localhost")
	v.SetDefault("NOTIFY_EMAIL", "")

	v.SetDefault("IMAGE_MAX_W", 1600)
	v.SetDefault("IMAGE_MAX_H", 1600)
	v.SetDefault("IMAGE_QUALITY", 82)

	v.AutomaticEnv()
	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Port:         v.GetString("PORT"),
		Debug:        v.GetBool("DEBUG"),
		SecretKey:    v.GetString("SECRET_KEY"),
		DatabaseURL:  v.GetString("DATABASE_URL"),
		AllowedHosts: splitList(v.GetString("ALLOWED_HOSTS")),
		StaticRoot:   v.GetString("STATIC_ROOT"),
		MediaRoot:    v.GetString("MEDIA_ROOT"),
		RedisURL:     v.GetString("REDIS_URL"),
		Mail: MailConfig{
			Host:        v.GetString("EMAIL_HOST"),
			Port:        v.GetInt("EMAIL_PORT"),
			Username:    v.GetString("EMAIL_HOST_USER"),
			Password:    v.GetString("EMAIL_HOST_PASSWORD"),
			UseTLS:      v.GetBool("EMAIL_USE_TLS"),
			FromAddress: v.GetString("DEFAULT_FROM_EMAIL"),
			NotifyTo:    v.GetString("NOTIFY_EMAIL"),
		},
		Image: ImageConfig{
			MaxWidth:  v.GetInt("IMAGE_MAX_W"),
			MaxHeight: v.GetInt("IMAGE_MAX_H"),
			Quality:   v.GetInt("IMAGE_QUALITY"),
		},
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=darulfatheh",
			v.GetString("DB_USER"),
			v.GetString("DB_PASSWORD"),
			v.GetString("DB_HOST"),
			v.GetString("DB_PORT"),
			v.GetString("DB_NAME"),
			v.GetString("DB_SSLMODE"),
		)
	}
	if cfg.Mail.NotifyTo == "" {
		cfg.Mail.NotifyTo = cfg.Mail.FromAddress
	}
	if cfg.SecretKey == "" {
		log.Warn("❌ SECRET_KEY is not set, falling back to the development key")
		cfg.SecretKey = devSecretKey
	}
	return cfg
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
