package config

import (
	"log"
	"strings"
	"time"

	"github.com/Kael08/JOB-PORTAL/internal/pkg/models"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from the environment. When APP_ENV is
// "local" (the default) the file at configPath is loaded into the
// environment first.
func InitConfig(configPath string) *models.Config {
	v := newViper()
	if v.GetString("APP_ENV") == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfig(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "job-portal-auth")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "development")

	v.SetDefault("SERVER_HOST", "")
	v.SetDefault("SERVER_PORT", 3001)
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USERNAME", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_DATABASE", "job_portal")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 2)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NATS_URL", "")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRATION", 60)
	v.SetDefault("JWT_ISSUER", "job-portal")

	v.SetDefault("SMSRU_API_URL", "https://sms.ru/sms/send")
	v.SetDefault("SMSRU_API_KEY", "")
	v.SetDefault("SMSRU_TEST_MODE", false)
	v.SetDefault("SMSRU_TIMEOUT", "10s")

	v.SetDefault("OTP_TTL", "30m")

	v.SetDefault("SEND_CODE_LIMIT", 5)
	v.SetDefault("SEND_CODE_WINDOW", "10m")
	v.SetDefault("IP_RATE_LIMIT", 60)
	v.SetDefault("IP_RATE_WINDOW", "1m")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	configs.NATS.URL = v.GetString("NATS_URL")

	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	configs.SMS.APIURL = v.GetString("SMSRU_API_URL")
	configs.SMS.APIKey = v.GetString("SMSRU_API_KEY")
	configs.SMS.TestMode = v.GetBool("SMSRU_TEST_MODE")
	configs.SMS.Timeout = getDuration(v, "SMSRU_TIMEOUT")

	configs.OTP.TTL = getDuration(v, "OTP_TTL")

	configs.RateLimit.SendCodeLimit = v.GetInt("SEND_CODE_LIMIT")
	configs.RateLimit.SendCodeWindow = getDuration(v, "SEND_CODE_WINDOW")
	configs.RateLimit.IPLimit = v.GetInt("IP_RATE_LIMIT")
	configs.RateLimit.IPWindow = getDuration(v, "IP_RATE_WINDOW")

	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}

// getDuration parses a duration, falling back to the registered default
// when the environment holds an unparsable value
func getDuration(v *viper.Viper, key string) time.Duration {
	d, err := time.ParseDuration(v.GetString(key))
	if err == nil {
		return d
	}

	log.Printf("Warning: Invalid duration value for %s, using default", key)
	defaults := viper.New()
	setDefaults(defaults)
	d, _ = time.ParseDuration(defaults.GetString(key))
	return d
}
