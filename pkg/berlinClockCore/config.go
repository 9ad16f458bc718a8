package berlinClockCore

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

const DefaultConfigPath = "config.toml"

type ClockConfig struct {
	TickMs   int    `toml:"tick_ms"`
	UTC      bool   `toml:"utc"`
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
}

type MQTTConfig struct {
	Enabled     bool   `toml:"enabled"`
	Broker      string `toml:"broker"`
	Port        int    `toml:"port"`
	TopicPrefix string `toml:"topic_prefix"`
	ClientID    string `toml:"client_id"`
	User        string `toml:"user"`
	Password    string `toml:"password"`
	QoS         int    `toml:"qos"`

	PublishTimeoutMs int `toml:"publish_timeout_ms"`
}

// Config holds everything the berlinClock binary can be configured with
type Config struct {
	Clock   ClockConfig `toml:"clock"`
	MQTT    MQTTConfig  `toml:"mqtt"`
	Hotkeys []Hotkey    `toml:"hotkey"`
	UI      UIConfig    `toml:"ui"`

	// Set from the command line only
	Path string `toml:"-"`
	At   string `toml:"-"`
}

// NewConfig creates a Config with default values
func NewConfig() *Config {
	return &Config{
		Clock: ClockConfig{
			TickMs:   200,
			LogLevel: "info",
			LogFile:  "berlinClock.log",
		},
		MQTT: MQTTConfig{
			Broker:      "localhost",
			Port:        1883,
			TopicPrefix: "berlin-clock",
			QoS:         1,

			PublishTimeoutMs: 2000,
		},
		Path: DefaultConfigPath,
	}
}

// LoadConfig builds the configuration in order: defaults, config file,
// BERLIN_CLOCK_* environment, then flags given in args.
func LoadConfig(args []string) (*Config, error) {
	cfg := NewConfig()

	fs := pflag.NewFlagSet("berlinClock", pflag.ContinueOnError)
	flags := cfg.registerFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.Changed("config") {
		cfg.Path = flags.Path
	}
	if err := cfg.LoadFromFile(cfg.Path); err != nil {
		return nil, err
	}
	cfg.LoadFromEnv()
	cfg.applyFlags(fs, flags)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile decodes a TOML config file. A missing file keeps the defaults.
func (c *Config) LoadFromFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		c.Hotkeys = DefaultHotkeys()
		c.UI = DefaultUIConfig()
		return nil
	}

	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("error loading config %s: %w", path, err)
	}

	if len(c.Hotkeys) == 0 {
		c.Hotkeys = DefaultHotkeys()
	}
	if len(c.UI.Layout) == 0 {
		c.UI = DefaultUIConfig()
	}
	return nil
}

// LoadFromEnv applies BERLIN_CLOCK_* environment overrides
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("BERLIN_CLOCK_TICK_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			c.Clock.TickMs = ms
		}
	}
	if v := os.Getenv("BERLIN_CLOCK_UTC"); v != "" {
		if utc, err := strconv.ParseBool(v); err == nil {
			c.Clock.UTC = utc
		}
	}
	if v := os.Getenv("BERLIN_CLOCK_LOG_LEVEL"); v != "" {
		c.Clock.LogLevel = v
	}
	if v := os.Getenv("BERLIN_CLOCK_LOG_FILE"); v != "" {
		c.Clock.LogFile = v
	}

	if v := os.Getenv("BERLIN_CLOCK_MQTT_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.MQTT.Enabled = enabled
		}
	}
	if v := os.Getenv("BERLIN_CLOCK_MQTT_BROKER"); v != "" {
		c.MQTT.Broker = v
	}
	if v := os.Getenv("BERLIN_CLOCK_MQTT_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.MQTT.Port = port
		}
	}
	if v := os.Getenv("BERLIN_CLOCK_MQTT_TOPIC"); v != "" {
		c.MQTT.TopicPrefix = v
	}
	if v := os.Getenv("BERLIN_CLOCK_MQTT_CLIENT_ID"); v != "" {
		c.MQTT.ClientID = v
	}
	if v := os.Getenv("BERLIN_CLOCK_MQTT_PUBLISH_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			c.MQTT.PublishTimeoutMs = ms
		}
	}
	if v := os.Getenv("BERLIN_CLOCK_MQTT_USER"); v != "" {
		c.MQTT.User = v
	}
	if v := os.Getenv("BERLIN_CLOCK_MQTT_PASSWORD"); v != "" {
		c.MQTT.Password = v
	}
}

type flagValues struct {
	Path     string
	At       string
	TickMs   int
	UTC      bool
	LogLevel string
	LogFile  string

	MQTTEnabled  bool
	MQTTBroker   string
	MQTTPort     int
	MQTTTopic    string
	MQTTClientID string
	MQTTUser     string
	MQTTPassword string
	MQTTTimeout  int
}

func (c *Config) registerFlags(fs *pflag.FlagSet) *flagValues {
	v := &flagValues{}

	fs.StringVar(&v.Path, "config", c.Path, "Path to TOML config file")
	fs.StringVar(&v.At, "at", "", "Print the face for hh:mm:ss and exit")
	fs.IntVar(&v.TickMs, "tick", c.Clock.TickMs, "Redraw interval in milliseconds")
	fs.BoolVar(&v.UTC, "utc", c.Clock.UTC, "Show UTC instead of local time")
	fs.StringVar(&v.LogLevel, "log-level", c.Clock.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&v.LogFile, "log-file", c.Clock.LogFile, "Log file used while the terminal UI runs")

	fs.BoolVar(&v.MQTTEnabled, "mqtt-enabled", c.MQTT.Enabled, "Publish lamp states over MQTT")
	fs.StringVar(&v.MQTTBroker, "mqtt-broker", c.MQTT.Broker, "MQTT broker hostname")
	fs.IntVar(&v.MQTTPort, "mqtt-port", c.MQTT.Port, "MQTT broker port")
	fs.StringVar(&v.MQTTTopic, "mqtt-topic", c.MQTT.TopicPrefix, "MQTT topic prefix")
	fs.StringVar(&v.MQTTClientID, "mqtt-client-id", c.MQTT.ClientID, "MQTT client ID")
	fs.StringVar(&v.MQTTUser, "mqtt-user", c.MQTT.User, "MQTT username")
	fs.StringVar(&v.MQTTPassword, "mqtt-password", c.MQTT.Password, "MQTT password")
	fs.IntVar(&v.MQTTTimeout, "mqtt-timeout", c.MQTT.PublishTimeoutMs, "MQTT connect/publish timeout in milliseconds")

	return v
}

// applyFlags copies only the flags that were given explicitly, so
// that flag defaults never hide file or environment values.
func (c *Config) applyFlags(fs *pflag.FlagSet, v *flagValues) {
	if fs.Changed("at") {
		c.At = v.At
	}
	if fs.Changed("tick") {
		c.Clock.TickMs = v.TickMs
	}
	if fs.Changed("utc") {
		c.Clock.UTC = v.UTC
	}
	if fs.Changed("log-level") {
		c.Clock.LogLevel = v.LogLevel
	}
	if fs.Changed("log-file") {
		c.Clock.LogFile = v.LogFile
	}
	if fs.Changed("mqtt-enabled") {
		c.MQTT.Enabled = v.MQTTEnabled
	}
	if fs.Changed("mqtt-broker") {
		c.MQTT.Broker = v.MQTTBroker
	}
	if fs.Changed("mqtt-port") {
		c.MQTT.Port = v.MQTTPort
	}
	if fs.Changed("mqtt-topic") {
		c.MQTT.TopicPrefix = v.MQTTTopic
	}
	if fs.Changed("mqtt-client-id") {
		c.MQTT.ClientID = v.MQTTClientID
	}
	if fs.Changed("mqtt-user") {
		c.MQTT.User = v.MQTTUser
	}
	if fs.Changed("mqtt-password") {
		c.MQTT.Password = v.MQTTPassword
	}
	if fs.Changed("mqtt-timeout") {
		c.MQTT.PublishTimeoutMs = v.MQTTTimeout
	}
}

// Validate checks that configuration values are usable
func (c *Config) Validate() error {
	if c.Clock.TickMs < 10 || c.Clock.TickMs > 1000 {
		return fmt.Errorf("tick must be between 10 and 1000 ms, got %d", c.Clock.TickMs)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Clock.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Clock.LogLevel)
	}

	if c.MQTT.Enabled {
		if c.MQTT.Broker == "" {
			return fmt.Errorf("MQTT broker is required when MQTT is enabled")
		}
		if c.MQTT.Port <= 0 || c.MQTT.Port > 65535 {
			return fmt.Errorf("MQTT port must be between 1 and 65535")
		}
		if c.MQTT.TopicPrefix == "" {
			return fmt.Errorf("MQTT topic prefix is required when MQTT is enabled")
		}
		if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
			return fmt.Errorf("MQTT qos must be 0, 1 or 2")
		}
		if c.MQTT.PublishTimeoutMs <= 0 {
			return fmt.Errorf("MQTT publish timeout must be positive, got %d ms", c.MQTT.PublishTimeoutMs)
		}
	}

	for _, hk := range c.Hotkeys {
		if !hk.Action.Valid() {
			return fmt.Errorf("hotkey %q: unknown action %q", hk.Key, hk.Action)
		}
	}

	return c.UI.Validate()
}

// TickInterval returns the redraw interval
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Clock.TickMs) * time.Millisecond
}

// PublishTimeout bounds every wait on the MQTT broker
func (c *Config) PublishTimeout() time.Duration {
	return time.Duration(c.MQTT.PublishTimeoutMs) * time.Millisecond
}

// MQTTAddress returns the full MQTT broker address
func (c *Config) MQTTAddress() string {
	return fmt.Sprintf("tcp://%s:%d", c.MQTT.Broker, c.MQTT.Port)
}
