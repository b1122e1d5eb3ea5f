package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// readSecret reads a Docker secret from a file path specified by an env var
// with _FILE suffix. If FOO is already set directly, the file is skipped.
// If FOO_FILE is set, reads the file content and sets FOO.
func readSecret(envKey string) {
	if os.Getenv(envKey) != "" {
		return
	}
	fileKey := envKey + "_FILE"
	filePath := os.Getenv(fileKey)
	if filePath == "" {
		return
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return
	}
	val := strings.TrimSpace(string(data))
	os.Setenv(envKey, val)
}

type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Script    ScriptConfig
	Media     MediaConfig
	Composer  ComposerConfig
	R2        R2Config
	Zitadel   ZitadelConfig
	Gateway   GatewayConfig
}

type ServerConfig struct {
	Port      string
	Env       string
	LogLevel  string
	ApiDomain string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret     string
	Expiration int // hours
}

type RateLimitConfig struct {
	ScriptPerMin      int
	PlanPerMin        int
	ProductionPerHour int
	DownloadPerHour   int
}

// ScriptConfig points at the script/LLM service used for script
// generation, visual suggestions and asset evaluation.
type ScriptConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// MediaConfig points at the media generation service (voiceover, images,
// video clips, music).
type MediaConfig struct {
	APIKey  string
	BaseURL string
	Timeout int // seconds
}

// ComposerConfig points at the composition service that renders the final
// video from assets, audio and watermark.
type ComposerConfig struct {
	ServiceURL string
	Timeout    int // seconds
}

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicURL       string
}

type ZitadelConfig struct {
	Domain   string
	ClientID string
	Issuer   string
}

type GatewayConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	// Read Docker Swarm secrets from _FILE env vars before Viper binds
	readSecret("REDIS_PASSWORD")
	readSecret("SCRIPT_API_KEY")
	readSecret("MEDIA_API_KEY")
	readSecret("R2_ACCOUNT_ID")
	readSecret("R2_ACCESS_KEY_ID")
	readSecret("R2_SECRET_ACCESS_KEY")
	readSecret("ZITADEL_CLIENT_ID")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Environment variables
	viper.AutomaticEnv()

	// Bind environment variables with underscores to nested config keys
	_ = viper.BindEnv("server.port", "SERVER_PORT")
	_ = viper.BindEnv("server.env", "SERVER_ENV")
	_ = viper.BindEnv("server.log_level", "LOG_LEVEL")
	_ = viper.BindEnv("server.api_domain", "API_DOMAIN")
	_ = viper.BindEnv("redis.addr", "REDIS_ADDR")
	_ = viper.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = viper.BindEnv("redis.db", "REDIS_DB")
	_ = viper.BindEnv("jwt.secret", "JWT_SECRET")
	_ = viper.BindEnv("jwt.expiration", "JWT_EXPIRATION")
	_ = viper.BindEnv("script.api_key", "SCRIPT_API_KEY")
	_ = viper.BindEnv("script.base_url", "SCRIPT_BASE_URL")
	_ = viper.BindEnv("script.model", "SCRIPT_MODEL")
	_ = viper.BindEnv("media.api_key", "MEDIA_API_KEY")
	_ = viper.BindEnv("media.base_url", "MEDIA_BASE_URL")
	_ = viper.BindEnv("media.timeout", "MEDIA_TIMEOUT")
	_ = viper.BindEnv("composer.service_url", "COMPOSER_SERVICE_URL")
	_ = viper.BindEnv("composer.timeout", "COMPOSER_TIMEOUT")
	_ = viper.BindEnv("r2.account_id", "R2_ACCOUNT_ID")
	_ = viper.BindEnv("r2.access_key_id", "R2_ACCESS_KEY_ID")
	_ = viper.BindEnv("r2.secret_access_key", "R2_SECRET_ACCESS_KEY")
	_ = viper.BindEnv("r2.bucket_name", "R2_BUCKET_NAME")
	_ = viper.BindEnv("r2.public_url", "R2_PUBLIC_URL")
	_ = viper.BindEnv("zitadel.domain", "ZITADEL_DOMAIN")
	_ = viper.BindEnv("zitadel.client_id", "ZITADEL_CLIENT_ID")
	_ = viper.BindEnv("zitadel.issuer", "ZITADEL_ISSUER")
	_ = viper.BindEnv("gateway.enabled", "GATEWAY_ENABLED")

	// Defaults
	viper.SetDefault("server.port", "8000")
	viper.SetDefault("server.env", "development")
	viper.SetDefault("server.log_level", "info")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("jwt.secret", "change-me-in-production")
	viper.SetDefault("jwt.expiration", 24)
	viper.SetDefault("ratelimit.script_per_min", 20)
	viper.SetDefault("ratelimit.plan_per_min", 30)
	viper.SetDefault("ratelimit.production_per_hour", 5)
	viper.SetDefault("ratelimit.download_per_hour", 30)

	// Script service defaults
	viper.SetDefault("script.base_url", "http://localhost:8091")
	viper.SetDefault("script.model", "gpt-4o-mini")

	// Media service defaults
	viper.SetDefault("media.base_url", "http://localhost:8092")
	viper.SetDefault("media.timeout", 180)

	// Composer defaults
	viper.SetDefault("composer.service_url", "http://localhost:8093")
	viper.SetDefault("composer.timeout", 300)

	// Gateway defaults
	viper.SetDefault("gateway.enabled", false)

	// Try to read config file (optional)
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Port:      viper.GetString("server.port"),
			Env:       viper.GetString("server.env"),
			LogLevel:  viper.GetString("server.log_level"),
			ApiDomain: viper.GetString("server.api_domain"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("redis.addr"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		JWT: JWTConfig{
			Secret:     viper.GetString("jwt.secret"),
			Expiration: viper.GetInt("jwt.expiration"),
		},
		RateLimit: RateLimitConfig{
			ScriptPerMin:      viper.GetInt("ratelimit.script_per_min"),
			PlanPerMin:        viper.GetInt("ratelimit.plan_per_min"),
			ProductionPerHour: viper.GetInt("ratelimit.production_per_hour"),
			DownloadPerHour:   viper.GetInt("ratelimit.download_per_hour"),
		},
		Script: ScriptConfig{
			APIKey:  viper.GetString("script.api_key"),
			BaseURL: viper.GetString("script.base_url"),
			Model:   viper.GetString("script.model"),
		},
		Media: MediaConfig{
			APIKey:  viper.GetString("media.api_key"),
			BaseURL: viper.GetString("media.base_url"),
			Timeout: viper.GetInt("media.timeout"),
		},
		Composer: ComposerConfig{
			ServiceURL: viper.GetString("composer.service_url"),
			Timeout:    viper.GetInt("composer.timeout"),
		},
		R2: R2Config{
			AccountID:       viper.GetString("r2.account_id"),
			AccessKeyID:     viper.GetString("r2.access_key_id"),
			SecretAccessKey: viper.GetString("r2.secret_access_key"),
			BucketName:      viper.GetString("r2.bucket_name"),
			PublicURL:       viper.GetString("r2.public_url"),
		},
		Zitadel: ZitadelConfig{
			Domain:   viper.GetString("zitadel.domain"),
			ClientID: viper.GetString("zitadel.client_id"),
			Issuer:   viper.GetString("zitadel.issuer"),
		},
		Gateway: GatewayConfig{
			Enabled: viper.GetBool("gateway.enabled"),
		},
	}

	return cfg, nil
}
