package lauds

import "time"

// DefaultBaseURL is the mobile breviary site pages are fetched from.
const DefaultBaseURL = "https://www.ibreviary.com/m2/"

// Config holds settings shared by the command-line tools.
type Config struct {
	// BaseURL is the breviary site root.
	BaseURL string `yaml:"base_url"`

	// Database is the SQLite database path.
	Database string `yaml:"database"`

	// Snapshots is the directory raw pages are kept in.
	Snapshots string `yaml:"snapshots"`

	Fetch FetchConfig `yaml:"fetch"`

	Extract ExtractConfig `yaml:"extract"`
}

// FetchConfig controls page acquisition.
type FetchConfig struct {
	Timeout           time.Duration   `yaml:"timeout"`
	Concurrency       int             `yaml:"concurrency"`
	RequestsPerSecond float64         `yaml:"requests_per_second"`
	RetryDelays       []time.Duration `yaml:"retry_delays"`
	MinPageSize       int             `yaml:"min_page_size"`
}

// ExtractConfig tunes the heuristics of the extractors.
type ExtractConfig struct {
	// IntercessionResponses are the congregational responses that open
	// intercessions.
	IntercessionResponses []string `yaml:"intercession_responses"`

	// KnownAntiphons are phrases identifying antiphon text that bleeds into
	// the first stanza of a psalm.
	KnownAntiphons []string `yaml:"known_antiphons"`
}

// DefaultKnownAntiphons are antiphon phrasings seen bleeding into psalm
// windows.
var DefaultKnownAntiphons = []string{
	"Each morning",
	"Martin, priest",
	"My heart is ready",
	"You who stand in his sanctuary",
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Fetch: FetchConfig{
			Timeout:           60 * time.Second,
			Concurrency:       2,
			RequestsPerSecond: 0.5,
			RetryDelays:       []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second},
			MinPageSize:       5000,
		},
		Extract: ExtractConfig{
			IntercessionResponses: append([]string(nil), DefaultIntercessionResponses...),
			KnownAntiphons:        append([]string(nil), DefaultKnownAntiphons...),
		},
	}
}

// Validate returns an error if the configuration contains invalid values.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return Errorf(EINVALID, "base URL required")
	}
	if c.Fetch.Timeout <= 0 {
		return Errorf(EINVALID, "fetch timeout must be positive")
	}
	if c.Fetch.Concurrency <= 0 {
		return Errorf(EINVALID, "fetch concurrency must be positive")
	}
	if c.Fetch.RequestsPerSecond <= 0 {
		return Errorf(EINVALID, "requests per second must be positive")
	}
	for _, d := range c.Fetch.RetryDelays {
		if d < 0 {
			return Errorf(EINVALID, "retry delays must not be negative")
		}
	}
	return nil
}
