// Package config loads client settings from a YAML file.
//
// Values of the form ${NAME} are expanded from the process environment
// before parsing, so secrets need not be written to disk.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/adamwoolhether/webapi/client"
	"github.com/adamwoolhether/webapi/client/throttle"
	"github.com/adamwoolhether/webapi/internal/validate"
	"github.com/adamwoolhether/webapi/proxy"
)

// Config is the on-disk configuration of an API client.
type Config struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	RedirectURI  string `yaml:"redirect_uri" validate:"omitempty,url"`
	AccessToken  string `yaml:"access_token"`
	RefreshToken string `yaml:"refresh_token"`

	Timeout   time.Duration    `yaml:"timeout" validate:"min=0"`
	UserAgent string           `yaml:"user_agent"`
	Throttle  *throttle.Config `yaml:"throttle"`
	Proxy     *proxy.Env       `yaml:"proxy"`
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML data into a validated Config. Unknown keys are
// rejected.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field constraints and the throttle limits.
func (c *Config) Validate() error {
	if err := validate.Check(c); err != nil {
		return err
	}

	if c.Throttle != nil {
		if err := c.Throttle.Validate(); err != nil {
			return fmt.Errorf("throttle: %w", err)
		}
	}

	return nil
}

// ClientOptions translates the transport settings into [client.Option]s.
func (c *Config) ClientOptions() []client.Option {
	var opts []client.Option

	if c.Timeout > 0 {
		opts = append(opts, client.WithTimeout(c.Timeout))
	}
	if c.UserAgent != "" {
		opts = append(opts, client.WithUserAgent(c.UserAgent))
	}
	if c.Throttle != nil {
		opts = append(opts, client.WithThrottle(c.Throttle.RPS, c.Throttle.Burst))
	}
	if c.Proxy != nil {
		opts = append(opts, client.WithProxyEnv(*c.Proxy))
	}

	return opts
}
