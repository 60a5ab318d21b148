package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"placement-match/internal/domain/matching"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Log      LogConfig
	Matching MatchingConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

func (c DatabaseConfig) Enabled() bool {
	return c.DBHost != "" && c.DBName != ""
}

type RedisConfig struct {
	Host       string
	Port       string
	Password   string
	DB         int
	CatalogTTL time.Duration
}

func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

type MatchingConfig struct {
	SkillWeight                 float64
	CourseWeight                float64
	CandidateDisplayThreshold   float64
	RequirementDisplayThreshold float64
}

func (c MatchingConfig) Policy() matching.Policy {
	return matching.Policy{SkillWeight: c.SkillWeight, CourseWeight: c.CourseWeight}
}

func (c MatchingConfig) Thresholds() matching.Thresholds {
	return matching.Thresholds{
		CandidateDisplay:   c.CandidateDisplayThreshold,
		RequirementDisplay: c.RequirementDisplayThreshold,
	}
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}
	optFloat := func(key string, def float64) float64 {
		raw := opt(key, "")
		if raw == "" {
			return def
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optInt := func(key string, def int) int {
		raw := opt(key, "")
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optBool := func(key string) bool {
		raw := opt(key, "")
		if raw == "" {
			return false
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			invalid = append(invalid, key)
			return false
		}
		return v
	}
	optDuration := func(key string, def time.Duration) time.Duration {
		raw := opt(key, "")
		if raw == "" {
			return def
		}
		v, err := time.ParseDuration(raw)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST", ""),
		DBPort:     opt("DB_PORT", "5432"),
		DBName:     opt("DB_NAME", ""),
		DBUser:     opt("DB_USER", ""),
		DBPassword: opt("DB_PASSWORD", ""),
		DBSSLMode:  opt("DB_SSL_MODE", "disable"),

		ConnectTimeout:        optDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:          int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:          int32(optInt("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   optDuration("DB_POOL_MAX_CONN_LIFETIME", 0),
		PoolMaxConnIdleTime:   optDuration("DB_POOL_MAX_CONN_IDLE_TIME", 0),
		PoolHealthCheckPeriod: optDuration("DB_POOL_HEALTH_CHECK_PERIOD", 0),
	}

	cfg.Redis = RedisConfig{
		Host:       opt("REDIS_HOST", "localhost"),
		Port:       opt("REDIS_PORT", "6379"),
		Password:   opt("REDIS_PASSWORD", ""),
		DB:         optInt("REDIS_DB", 0),
		CatalogTTL: optDuration("REDIS_CATALOG_TTL", 10*time.Minute),
	}

	cfg.Log = LogConfig{
		JSON:  optBool("LOG_JSON"),
		Debug: optBool("LOG_DEBUG"),
	}

	cfg.Matching = MatchingConfig{
		SkillWeight:                 optFloat("MATCH_SKILL_WEIGHT", matching.DefaultSkillWeight),
		CourseWeight:                optFloat("MATCH_COURSE_WEIGHT", matching.DefaultCourseWeight),
		CandidateDisplayThreshold:   optFloat("MATCH_CANDIDATE_DISPLAY_THRESHOLD", matching.DefaultCandidateDisplayThreshold),
		RequirementDisplayThreshold: optFloat("MATCH_REQUIREMENT_DISPLAY_THRESHOLD", matching.DefaultRequirementDisplayThreshold),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}
	if err := cfg.Matching.Policy().Validate(); err != nil {
		return Config{}, err
	}
	if err := cfg.Matching.Thresholds().Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
