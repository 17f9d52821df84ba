package config

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"

	"go-data-processor/internal/model"
)

// Config holds every tunable of the processor, loaded from the environment.
type Config struct {
	JobName       string        `envconfig:"CRONJOB_NAME" default:"dockerfile-data-processor"`
	ExecutionID   string        `envconfig:"CRONJOB_EXECUTION_UUID"`
	ManualTrigger bool          `envconfig:"MANUAL_TRIGGER" default:"false"`
	SourceURL     string        `envconfig:"SOURCE_URL" default:"https://jsonplaceholder.typicode.com/posts"`
	FetchTimeout  time.Duration `envconfig:"FETCH_TIMEOUT" default:"30s"`
	FetchLimit    int           `envconfig:"FETCH_LIMIT" default:"10"`
	OutputDir     string        `envconfig:"OUTPUT_DIR" default:"/tmp/cronjob_output"`
	DBPath        string        `envconfig:"DB_PATH" default:"processor.db"`
	SimulateWork  bool          `envconfig:"SIMULATE_WORK" default:"true"`
	WorkBatches   int           `envconfig:"WORK_BATCHES" default:"3"`
	ListenAddr    string        `envconfig:"LISTEN_ADDR" default:":8080"`
}

// Load builds a Config from environment variables. A missing execution uuid
// gets a freshly generated one, so every run is addressable in the registry.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if c.ExecutionID == "" {
		c.ExecutionID = uuid.New().String()
	}

	if c.FetchLimit <= 0 {
		return nil, fmt.Errorf("FETCH_LIMIT must be positive")
	}
	if c.FetchTimeout <= 0 {
		return nil, fmt.Errorf("FETCH_TIMEOUT must be positive")
	}
	if c.WorkBatches <= 0 {
		return nil, fmt.Errorf("WORK_BATCHES must be positive")
	}
	if c.OutputDir == "" {
		return nil, fmt.Errorf("OUTPUT_DIR cannot be empty")
	}

	return &c, nil
}

// RunContext derives the immutable per-run metadata threaded through the
// pipeline stages.
func (c *Config) RunContext(start time.Time) model.RunContext {
	return model.RunContext{
		JobName:       c.JobName,
		ExecutionID:   c.ExecutionID,
		ManualTrigger: c.ManualTrigger,
		StartedAt:     start,
	}
}
