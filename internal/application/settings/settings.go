// Package settings defines application-level configuration data.
package settings

// SearchConfig configures the podcast catalog.
type SearchConfig struct {
	BaseURL string `yaml:"base_url" kong:"help='Podcast catalog base URL',default='https://itunes.apple.com'"`
}

// HTTPConfig configures outbound requests.
type HTTPConfig struct {
	TimeoutSeconds int    `yaml:"timeout_seconds" kong:"help='Request timeout in seconds',default='30'"`
	UserAgent      string `yaml:"user_agent" kong:"help='User-Agent header',default='Podplay/1.0'"`
	MaxBodyBytes   int64  `yaml:"max_body_bytes" kong:"help='Maximum feed size in bytes',default='20971520'"`
}

// DisplayConfig defines how results are rendered.
type DisplayConfig struct {
	DateFormat string `yaml:"date_format" kong:"help='Go layout for short dates',default='1/2/06'"`
	Width      int    `yaml:"width" kong:"help='Maximum line width',default='100'"`
}

// LogConfig defines diagnostic logging.
type LogConfig struct {
	Level       string `yaml:"level" kong:"help='Log level (debug/info/warn/error)',default='warn'"`
	Development bool   `yaml:"development" kong:"help='Human-readable console logs',default='false'"`
}

// Settings represents the application configuration.
type Settings struct {
	Subscriptions []string      `yaml:"subscriptions" kong:"help='Subscribed podcast feed URLs'"`
	Search        SearchConfig  `yaml:"search" kong:"embed,prefix='search.'"`
	HTTP          HTTPConfig    `yaml:"http" kong:"embed,prefix='http.'"`
	Display       DisplayConfig `yaml:"display" kong:"embed,prefix='display.'"`
	Log           LogConfig     `yaml:"log" kong:"embed,prefix='log.'"`
}
