package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"simulador_tokenizacao/internal/domain/entities"
	"simulador_tokenizacao/internal/domain/finance"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"PORT", "CACHE_BACKEND", "CACHE_TTL", "REDIS_DB", "IRR_TOLERANCE", "IRR_MAX_ITERATIONS", "SCENARIO_WORKERS", "SIMULATIONS_CACHE_TABLE"} {
			t.Setenv(k, "")
		}
		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != 8080 || cfg.CacheBackend != CacheBackendMemory || cfg.CacheTTL != 15*time.Minute {
			t.Fatalf("unexpected defaults %+v", cfg)
		}
		if cfg.IRRTolerance != finance.DefaultIRRTolerance || cfg.IRRMaxIter != finance.DefaultIRRMaxIterations {
			t.Fatalf("unexpected irr defaults %+v", cfg)
		}
		if cfg.DynamoDB.Table != "simulation_results" {
			t.Fatalf("unexpected table %q", cfg.DynamoDB.Table)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("CACHE_BACKEND", "Redis")
		t.Setenv("CACHE_TTL", "1h")
		t.Setenv("REDIS_DB", "2")
		t.Setenv("IRR_TOLERANCE", "0.001")
		t.Setenv("IRR_MAX_ITERATIONS", "50")
		t.Setenv("SCENARIO_WORKERS", "4")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != 9090 || cfg.CacheBackend != CacheBackendRedis || cfg.CacheTTL != time.Hour || cfg.Redis.DB != 2 {
			t.Fatalf("unexpected config %+v", cfg)
		}
		if cfg.IRRTolerance != 0.001 || cfg.IRRMaxIter != 50 || cfg.Workers != 4 {
			t.Fatalf("unexpected engine settings %+v", cfg)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		t.Setenv("CACHE_BACKEND", "memcached")
		if _, err := Load(); !errors.Is(err, ErrInvalidCacheBackend) {
			t.Fatalf("expected ErrInvalidCacheBackend, got %v", err)
		}
		t.Setenv("CACHE_BACKEND", "")
		t.Setenv("PORT", "abc")
		if _, err := Load(); err == nil {
			t.Fatalf("expected invalid PORT error")
		}
	})
}

func TestConfig_Engine(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		engine, err := Config{IRRTolerance: 1e-6, IRRMaxIter: 10, Workers: 2}.Engine()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if engine.IRR.Tolerance != 1e-6 || engine.IRR.MaxIterations != 10 || engine.Workers != 2 {
			t.Fatalf("unexpected engine %+v", engine)
		}
		if len(engine.Scenarios) != 3 {
			t.Fatalf("expected default presets")
		}
	})

	t.Run("presets file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scenarios.yaml")
		body := "scenarios:\n  - nome: Base\n    multReceita: 1\n    multCustoVariavel: 1\n    multOpex: 1\n  - nome: Conservador\n    multReceita: 0.8\n    multCustoVariavel: 1.2\n    multOpex: 1.15\n"
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		engine, err := Config{ScenariosFile: path}.Engine()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := entities.ScenarioConfig{Nome: entities.ScenarioConservador, MultReceita: 0.8, MultCustoVariavel: 1.2, MultOpex: 1.15}
		if len(engine.Scenarios) != 2 || engine.Scenarios[1] != want {
			t.Fatalf("unexpected presets %+v", engine.Scenarios)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := (Config{ScenariosFile: filepath.Join(t.TempDir(), "nope.yaml")}).Engine(); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestParseScenarios(t *testing.T) {
	cases := map[string]string{
		"empty":     "scenarios: []\n",
		"unknown":   "scenarios:\n  - nome: A\n    foo: 1\n",
		"duplicate": "scenarios:\n  - nome: A\n  - nome: A\n",
		"negative":  "scenarios:\n  - nome: A\n    multOpex: -1\n",
		"no name":   "scenarios:\n  - multOpex: 1\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseScenarios([]byte(body)); !errors.Is(err, ErrInvalidScenarioFile) {
				t.Fatalf("expected ErrInvalidScenarioFile, got %v", err)
			}
		})
	}
}
