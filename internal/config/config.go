package config

import (
	"errors"
	"fmt"
	"os"
	"simulador_tokenizacao/internal/domain/entities"
	"simulador_tokenizacao/internal/domain/finance"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	CacheBackendMemory   = "memory"
	CacheBackendRedis    = "redis"
	CacheBackendDynamoDB = "dynamodb"
	CacheBackendNone     = "none"

	defaultPort       = 8080
	defaultCacheTTL   = 15 * time.Minute
	defaultCacheTable = "simulation_results"
)

var (
	ErrInvalidCacheBackend = errors.New("invalid CACHE_BACKEND")
	ErrInvalidScenarioFile = errors.New("invalid scenarios file")
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Table           string
}

// Config is the process configuration, read from the environment.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - CACHE_BACKEND: memory | redis | dynamodb | none (default: memory)
//   - CACHE_TTL: Go duration (default: 15m)
//   - REDIS_ADDR (default: localhost:6379), REDIS_PASSWORD, REDIS_DB
//   - SIMULATIONS_CACHE_TABLE (default: simulation_results)
//   - AWS_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, DYNAMODB_ENDPOINT
//   - IRR_TOLERANCE, IRR_MAX_ITERATIONS
//   - SCENARIO_WORKERS
//   - SCENARIOS_FILE: YAML scenario presets
type Config struct {
	Port          int
	CacheBackend  string
	CacheTTL      time.Duration
	Redis         RedisConfig
	DynamoDB      DynamoDBConfig
	IRRTolerance  float64
	IRRMaxIter    int
	Workers       int
	ScenariosFile string
}

func Load() (Config, error) {
	cfg := Config{
		CacheBackend:  strings.ToLower(getenvDefault("CACHE_BACKEND", CacheBackendMemory)),
		ScenariosFile: os.Getenv("SCENARIOS_FILE"),
		Redis: RedisConfig{
			Addr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		DynamoDB: DynamoDBConfig{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Table:           getenvDefault("SIMULATIONS_CACHE_TABLE", defaultCacheTable),
		},
	}

	var err error
	if cfg.Port, err = getenvInt("PORT", defaultPort); err != nil {
		return Config{}, err
	}
	if cfg.Redis.DB, err = getenvInt("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.IRRMaxIter, err = getenvInt("IRR_MAX_ITERATIONS", finance.DefaultIRRMaxIterations); err != nil {
		return Config{}, err
	}
	if cfg.Workers, err = getenvInt("SCENARIO_WORKERS", 0); err != nil {
		return Config{}, err
	}
	if cfg.IRRTolerance, err = getenvFloat("IRR_TOLERANCE", finance.DefaultIRRTolerance); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL, err = getenvDuration("CACHE_TTL", defaultCacheTTL); err != nil {
		return Config{}, err
	}

	switch cfg.CacheBackend {
	case CacheBackendMemory, CacheBackendRedis, CacheBackendDynamoDB, CacheBackendNone:
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidCacheBackend, cfg.CacheBackend)
	}
	return cfg, nil
}

// Engine builds the finance engine, loading scenario presets from ScenariosFile when set.
func (c Config) Engine() (finance.Engine, error) {
	engine := finance.DefaultEngine()
	engine.IRR.Tolerance = c.IRRTolerance
	engine.IRR.MaxIterations = c.IRRMaxIter
	if c.Workers > 0 {
		engine.Workers = c.Workers
	}
	if c.ScenariosFile == "" {
		return engine, nil
	}

	raw, err := os.ReadFile(c.ScenariosFile)
	if err != nil {
		return finance.Engine{}, err
	}
	presets, err := ParseScenarios(raw)
	if err != nil {
		return finance.Engine{}, err
	}
	engine.Scenarios = presets
	return engine, nil
}

type scenariosFile struct {
	Scenarios []entities.ScenarioConfig `yaml:"scenarios"`
}

// ParseScenarios reads a YAML document of the form
//
//	scenarios:
//	  - nome: Base
//	    multReceita: 1
//	    multCustoVariavel: 1
//	    multOpex: 1
func ParseScenarios(raw []byte) ([]entities.ScenarioConfig, error) {
	var f scenariosFile
	if err := yaml.UnmarshalStrict(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenarioFile, err)
	}
	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("%w: no scenarios", ErrInvalidScenarioFile)
	}
	seen := make(map[string]bool, len(f.Scenarios))
	for _, s := range f.Scenarios {
		if strings.TrimSpace(s.Nome) == "" || seen[s.Nome] {
			return nil, fmt.Errorf("%w: empty or duplicated name %q", ErrInvalidScenarioFile, s.Nome)
		}
		if s.MultReceita < 0 || s.MultCustoVariavel < 0 || s.MultOpex < 0 {
			return nil, fmt.Errorf("%w: negative multiplier in %q", ErrInvalidScenarioFile, s.Nome)
		}
		seen[s.Nome] = true
	}
	return f.Scenarios, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getenvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
