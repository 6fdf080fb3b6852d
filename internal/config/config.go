package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultInputFile = "contacts_export.vcf"
	defaultOutputDir = "filtered_contacts"
	defaultLogLevel  = "info"

	configPathEnv = "CONTACT_SORTER_CONFIG"
	inputFileEnv  = "CONTACT_INPUT_FILE"
	outputDirEnv  = "CONTACT_OUTPUT_DIR"
	logLevelEnv   = "CONTACT_LOG_LEVEL"
)

// Config holds the run parameters for a single sorting pass.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig names the card-format export to ingest.
type InputConfig struct {
	File string `yaml:"file"`
}

// OutputConfig names the directory receiving per-label files and the report.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig controls console verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(inputFileEnv); v != "" {
		c.Input.File = v
	}

	if v := os.Getenv(outputDirEnv); v != "" {
		c.Output.Dir = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Input.File != "" {
		base.Input.File = override.Input.File
	}

	if override.Output.Dir != "" {
		base.Output.Dir = override.Output.Dir
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Input:   InputConfig{File: defaultInputFile},
		Output:  OutputConfig{Dir: defaultOutputDir},
		Logging: LoggingConfig{Level: defaultLogLevel},
	}
}
