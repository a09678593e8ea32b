package config

import "github.com/kelseyhightower/envconfig"

// Config is the environment-driven configuration, prefix DRIVECHECK_.
// Flags override these values in main.
type Config struct {
	SmartctlPath  string `envconfig:"SMARTCTL_PATH" default:"smartctl"`
	LogDir        string `envconfig:"LOG_DIR" default:"."`
	NotifyURL     string `envconfig:"NOTIFY_URL"`
	NotifyCaution bool   `envconfig:"NOTIFY_CAUTION"`
	Mute          bool   `envconfig:"MUTE"`
	RemapBase     string `envconfig:"REMAP_BASE" default:"/dev/sd"`
	IntervalSec   int    `envconfig:"INTERVAL"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("drivecheck", &c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Overrides carries the flag-supplied values that take precedence over the
// environment. Empty strings and false mean "not given"; Interval uses -1
// because 0 is a meaningful value (single run).
type Overrides struct {
	LogDir    string
	NotifyURL string
	Mute      bool
	Interval  int
}

// Apply lays the given overrides on top of the environment configuration.
func (c *Config) Apply(o Overrides) {
	if o.LogDir != "" {
		c.LogDir = o.LogDir
	}
	if o.NotifyURL != "" {
		c.NotifyURL = o.NotifyURL
	}
	if o.Mute {
		c.Mute = true
	}
	if o.Interval >= 0 {
		c.IntervalSec = o.Interval
	}
}
