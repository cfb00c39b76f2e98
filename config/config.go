package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration (quote session store).
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Admin gate: bcrypt hash of the lowercased shared secret. When unset,
	// main derives one from the default master secret at startup.
	AdminSecretHash string `mapstructure:"ADMIN_SECRET_HASH"`

	// Geocoding and travel pricing.
	GeocoderBaseURL string  `mapstructure:"GEOCODER_BASE_URL"`
	GeocoderCountry string  `mapstructure:"GEOCODER_COUNTRY"`
	OriginLat       float64 `mapstructure:"ORIGIN_LAT"`
	OriginLon       float64 `mapstructure:"ORIGIN_LON"`
	PricePerKm      float64 `mapstructure:"PRICE_PER_KM"`
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

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("ADMIN_SECRET_HASH", "")
	viper.SetDefault("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org/search")
	viper.SetDefault("GEOCODER_COUNTRY", "br")
	// Home base: EAREC studio, Goianinha - RN.
	viper.SetDefault("ORIGIN_LAT", -6.2662)
	viper.SetDefault("ORIGIN_LON", -35.2227)
	viper.SetDefault("PRICE_PER_KM", 2.0)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
