package config

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"zipsea/models"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	SiteURL           string `mapstructure:"SITE_URL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`

	// Backend cruise/pricing API.
	APIBaseURL string        `mapstructure:"API_BASE_URL"`
	APITimeout time.Duration `mapstructure:"API_TIMEOUT"`

	// MongoDB (quote requests).
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr         string        `mapstructure:"REDIS_ADDR"`
	RedisPassword     string        `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB      int           `mapstructure:"REDIS_CACHE_DB"`
	RedisSessionDB    int           `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB      int           `mapstructure:"REDIS_QUEUE_DB"`
	CruiseCacheTTL    time.Duration `mapstructure:"CRUISE_CACHE_TTL"`
	BookingSessionTTL time.Duration `mapstructure:"BOOKING_SESSION_TTL"`
	FeedRefresh       time.Duration `mapstructure:"FEED_REFRESH_INTERVAL"`

	// Live booking gate.
	EnableLiveBooking      bool   `mapstructure:"ENABLE_LIVE_BOOKING"`
	LiveBookingCruiseLines string `mapstructure:"LIVE_BOOKING_CRUISE_LINES"`

	OnboardCreditRate float64 `mapstructure:"ONBOARD_CREDIT_RATE"`

	SlackWebhookURL string `mapstructure:"SLACK_WEBHOOK_URL"`

	// Cloudinary image proxy.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SITE_URL", "http://localhost:8080")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("API_BASE_URL", "http://localhost:3001")
	v.SetDefault("API_TIMEOUT", "10s")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "zipsea")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("REDIS_SESSION_DB", 1)
	v.SetDefault("REDIS_QUEUE_DB", 2)
	v.SetDefault("CRUISE_CACHE_TTL", "5m")
	v.SetDefault("BOOKING_SESSION_TTL", "30m")
	v.SetDefault("FEED_REFRESH_INTERVAL", "1h")
	v.SetDefault("ENABLE_LIVE_BOOKING", false)
	v.SetDefault("LIVE_BOOKING_CRUISE_LINES", "22,3")
	v.SetDefault("ONBOARD_CREDIT_RATE", 0.10)
	v.SetDefault("SLACK_WEBHOOK_URL", "")
	v.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	v.SetDefault("CLOUDINARY_API_KEY", "")
	v.SetDefault("CLOUDINARY_API_SECRET", "")
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// LiveBooking builds the live booking gate from the flag and the
// comma-separated cruise line allow-list. Unparseable ids are skipped.
func (c Config) LiveBooking() models.LiveBookingConfig {
	var ids []int
	for _, part := range strings.Split(c.LiveBookingCruiseLines, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			log.Printf("config: ignoring cruise line id %q", part)
			continue
		}
		ids = append(ids, id)
	}
	return models.NewLiveBookingConfig(c.EnableLiveBooking, ids...)
}
