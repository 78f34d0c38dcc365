package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mudesheng/repeatpath/repeat"
)

const (
	DefaultRepeatSizeLimit      = 10000
	DefaultNeighborSizeMinimum  = 10000
	DefaultInOutDegreeThreshold = 2
)

// environment overrides, applied after the config file
const (
	EnvRepeatSizeLimit      = "RP_REPEAT_SIZE_LIMIT"
	EnvNeighborSizeMinimum  = "RP_NEIGHBOR_SIZE_MINIMUM"
	EnvInOutDegreeThreshold = "RP_INOUT_DEGREE_THRESHOLD"
)

type Config struct {
	RepeatSizeLimit      int  `yaml:"repeat_size_limit"`
	NeighborSizeMinimum  int  `yaml:"neighbor_size_minimum"`
	InOutDegreeThreshold int  `yaml:"inout_degree_threshold"`
	Dot                  bool `yaml:"dot"`
	Fasta                bool `yaml:"fasta"`
	Progress             bool `yaml:"progress"`
}

func Default() Config {
	return Config{
		RepeatSizeLimit:      DefaultRepeatSizeLimit,
		NeighborSizeMinimum:  DefaultNeighborSizeMinimum,
		InOutDegreeThreshold: DefaultInOutDegreeThreshold,
	}
}

// Load returns the defaults overlaid with the YAML file at path (skipped
// when path is empty) and then with the RP_* environment variables. A .env
// file in the working directory is loaded first when present.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	for _, ov := range []struct {
		key string
		dst *int
	}{
		{EnvRepeatSizeLimit, &cfg.RepeatSizeLimit},
		{EnvNeighborSizeMinimum, &cfg.NeighborSizeMinimum},
		{EnvInOutDegreeThreshold, &cfg.InOutDegreeThreshold},
	} {
		v := os.Getenv(ov.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("environment %s=%q: %w", ov.key, v, err)
		}
		*ov.dst = n
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.RepeatSizeLimit < 0 {
		return errors.New("repeat_size_limit must not be negative")
	}
	if c.NeighborSizeMinimum < 0 {
		return errors.New("neighbor_size_minimum must not be negative")
	}
	if c.InOutDegreeThreshold < 1 {
		return errors.New("inout_degree_threshold must be at least 1")
	}
	return nil
}

func (c Config) RepeatOptions() repeat.Options {
	return repeat.Options{
		SizeLimit:      c.RepeatSizeLimit,
		NeighborMin:    c.NeighborSizeMinimum,
		InOutThreshold: c.InOutDegreeThreshold,
	}
}
