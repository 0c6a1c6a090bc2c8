package config

import (
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/op/go-logging"
	"github.com/pelletier/go-toml/v2"
)

var log = logging.MustGetLogger("config")

// Args ...
var Args = struct {
	ListenPort int    `help:"Port the addon listens on"`
	ConfigFile string `help:"Path to an optional TOML configuration file"`
}{
	ListenPort: 8001,
}

// Sources toggles the built-in subtitle sites individually.
type Sources struct {
	Subtitrari bool `toml:"subtitrari"`
	SubsRo     bool `toml:"subsro"`
	Titrari    bool `toml:"titrari"`
}

// Configuration ...
type Configuration struct {
	TimeoutSeconds int     `toml:"timeout_seconds"`
	RateIntervalMS int     `toml:"rate_interval_ms"`
	ResultLimit    int     `toml:"result_limit"`
	Sources        Sources `toml:"sources"`

	listenPort int
}

var (
	lock    sync.Mutex
	current *Configuration
)

// Get returns the active configuration, loading it on first use.
func Get() *Configuration {
	lock.Lock()
	defer lock.Unlock()

	if current == nil {
		current = load()
	}
	return current
}

// Reload re-reads the configuration file over the built-in defaults.
func Reload() *Configuration {
	lock.Lock()
	defer lock.Unlock()

	current = load()
	return current
}

func load() *Configuration {
	conf := &Configuration{
		TimeoutSeconds: 10,
		RateIntervalMS: 500,
		ResultLimit:    10,
		Sources:        Sources{Subtitrari: true, SubsRo: true, Titrari: true},
		listenPort:     Args.ListenPort,
	}

	if Args.ConfigFile == "" {
		return conf
	}

	data, err := os.ReadFile(Args.ConfigFile)
	if err != nil {
		log.Warningf("Unable to read %s: %s, using defaults", Args.ConfigFile, err)
		return conf
	}
	if err := toml.Unmarshal(data, conf); err != nil {
		log.Warningf("Unable to parse %s: %s, using defaults", Args.ConfigFile, err)
	}
	return conf
}

// Listen returns the address for the HTTP server.
func (c *Configuration) Listen() string {
	return ":" + strconv.Itoa(c.listenPort)
}

// Timeout returns the per-request timeout for outbound scraping calls.
func (c *Configuration) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RateInterval returns the minimum spacing between calls to one source.
func (c *Configuration) RateInterval() time.Duration {
	return time.Duration(c.RateIntervalMS) * time.Millisecond
}
