package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"tasnim.dev/aws-key-rotator/internal/constants"
	"tasnim.dev/aws-key-rotator/internal/rotation"
)

// Environment variables read by ApplyEnv.
const (
	EnvMaxAgeDays   = "MAX_NUMBER_OF_DAYS"
	EnvTopicARN     = "SNS_TOPIC_ARN"
	EnvMode         = "EXECUTION_MODE"
	EnvSubject      = "NOTIFICATION_SUBJECT"
	EnvPollInterval = "REPORT_POLL_INTERVAL_SECONDS"
	EnvMaxPolls     = "MAX_REPORT_POLLS"
)

var ErrMissingTopic = errors.New("SNS topic ARN is required")

// Config holds job settings loaded from ~/.config/aws-key-rotator/config.yaml
// and the environment.
type Config struct {
	DefaultProfile            string `yaml:"default_profile"`
	DefaultRegion             string `yaml:"default_region"`
	MaxAgeDays                int    `yaml:"max_age_days"`
	TopicARN                  string `yaml:"sns_topic_arn"`
	Mode                      string `yaml:"mode"`
	Subject                   string `yaml:"subject"`
	ReportPollIntervalSeconds int    `yaml:"report_poll_interval_seconds"`
	MaxReportPolls            int    `yaml:"max_report_polls"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		MaxAgeDays:     constants.DefaultMaxAgeDays,
		Mode:           string(rotation.ModeDryRun),
		Subject:        constants.DefaultSubject,
		MaxReportPolls: constants.DefaultMaxReportPolls,
	}
}

// Load reads the config file. Returns Default() if the file doesn't exist.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(filepath.Join(home, ".config", "aws-key-rotator", "config.yaml"))
}

// LoadFile reads a config file on top of Default(). A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from environment variables. Pass os.LookupEnv
// outside of tests.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvMaxAgeDays); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxAgeDays, err)
		}
		c.MaxAgeDays = n
	}
	if v, ok := lookup(EnvTopicARN); ok && v != "" {
		c.TopicARN = v
	}
	if v, ok := lookup(EnvMode); ok && v != "" {
		c.Mode = v
	}
	if v, ok := lookup(EnvSubject); ok {
		c.Subject = v
	}
	if v, ok := lookup(EnvPollInterval); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPollInterval, err)
		}
		c.ReportPollIntervalSeconds = n
	}
	if v, ok := lookup(EnvMaxPolls); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxPolls, err)
		}
		c.MaxReportPolls = n
	}
	return nil
}

// Merge applies CLI flag overrides. Flags take precedence over config defaults.
func (c *Config) Merge(profile, region string) (string, string) {
	p := c.DefaultProfile
	if profile != "" {
		p = profile
	}
	r := c.DefaultRegion
	if region != "" {
		r = region
	}
	return p, r
}

// PollInterval returns the wait between report readiness checks.
func (c *Config) PollInterval() time.Duration {
	if c.ReportPollIntervalSeconds <= 0 {
		return constants.ReportPollInterval
	}
	return time.Duration(c.ReportPollIntervalSeconds) * time.Second
}

// ExecutionMode parses Mode.
func (c *Config) ExecutionMode() (rotation.Mode, error) {
	return rotation.ParseMode(c.Mode)
}

// Validate checks the settings needed to run the job. requireTopic is false
// for commands that never notify.
func (c *Config) Validate(requireTopic bool) error {
	if requireTopic && c.TopicARN == "" {
		return fmt.Errorf("%w: set %s or sns_topic_arn", ErrMissingTopic, EnvTopicARN)
	}
	if c.MaxAgeDays < 0 {
		return fmt.Errorf("max age must not be negative, got %d", c.MaxAgeDays)
	}
	if c.MaxReportPolls < 0 {
		return fmt.Errorf("max report polls must not be negative, got %d", c.MaxReportPolls)
	}
	if _, err := c.ExecutionMode(); err != nil {
		return err
	}
	return nil
}
