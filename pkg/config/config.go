package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/rhq"
	ConfigFileName    = "rhq.yml"
)

// ValidLogLevels are the levels accepted by log_level
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// RhqConfig holds all RHQ server configuration settings
type RhqConfig struct {
	// BindAddress is the address the API listens on
	BindAddress string `yaml:"bind_address" json:"bind_address"`

	// Port is the port the API listens on
	Port int `yaml:"port" json:"port"`

	// DatabaseURL is the postgres connection string
	DatabaseURL string `yaml:"database_url" json:"database_url"`

	// JWTSecret signs and verifies bearer tokens
	JWTSecret string `yaml:"jwt_secret" json:"-"`

	// TokenTTL is the lifetime of issued tokens in seconds
	TokenTTL int `yaml:"token_ttl" json:"token_ttl"`

	// LogLevel is the zap level name
	LogLevel string `yaml:"log_level" json:"log_level"`

	// MaxPageSize caps the page size of search requests
	MaxPageSize int `yaml:"max_page_size" json:"max_page_size"`

	// UpdateWorkers bounds concurrent configuration updates on the agent
	UpdateWorkers int `yaml:"update_workers" json:"update_workers"`

	// FacetLockTimeout is how long a facet call waits for its lock, in seconds
	FacetLockTimeout int `yaml:"facet_lock_timeout" json:"facet_lock_timeout"`

	// DriftWatchEnabled turns on the raw configuration file watcher
	DriftWatchEnabled bool `yaml:"drift_watch_enabled" json:"drift_watch_enabled"`

	// StatusPageTitle is the heading of the status page
	StatusPageTitle string `yaml:"status_page_title" json:"status_page_title"`

	// TrustedProxies is a list of CIDR ranges whose X-Forwarded-For is honored
	TrustedProxies []string `yaml:"trusted_proxies" json:"trusted_proxies"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *RhqConfig
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *RhqConfig {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Return defaults on error
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *RhqConfig {
	return &RhqConfig{
		BindAddress:       "127.0.0.1",
		Port:              7080,
		TokenTTL:          480,
		LogLevel:          "info",
		MaxPageSize:       1000,
		UpdateWorkers:     4,
		FacetLockTimeout:  60,
		DriftWatchEnabled: true,
		StatusPageTitle:   "RHQ",
		TrustedProxies:    []string{},
		sources:           make(map[string]string),
	}
}

// Load loads configuration from file and environment variables
// Environment variables take precedence over file values
func Load() (*RhqConfig, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("RHQ_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig RhqConfig
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"bind_address", "port", "database_url", "jwt_secret", "token_ttl",
		"log_level", "max_page_size", "update_workers", "facet_lock_timeout",
		"drift_watch_enabled", "status_page_title", "trusted_proxies",
	}
}

func (c *RhqConfig) applyFileConfig(file *RhqConfig) {
	if file.BindAddress != "" {
		c.BindAddress = file.BindAddress
		c.sources["bind_address"] = "file"
	}
	if file.Port != 0 {
		c.Port = file.Port
		c.sources["port"] = "file"
	}
	if file.DatabaseURL != "" {
		c.DatabaseURL = file.DatabaseURL
		c.sources["database_url"] = "file"
	}
	if file.JWTSecret != "" {
		c.JWTSecret = file.JWTSecret
		c.sources["jwt_secret"] = "file"
	}
	if file.TokenTTL != 0 {
		c.TokenTTL = file.TokenTTL
		c.sources["token_ttl"] = "file"
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
		c.sources["log_level"] = "file"
	}
	if file.MaxPageSize != 0 {
		c.MaxPageSize = file.MaxPageSize
		c.sources["max_page_size"] = "file"
	}
	if file.UpdateWorkers != 0 {
		c.UpdateWorkers = file.UpdateWorkers
		c.sources["update_workers"] = "file"
	}
	if file.FacetLockTimeout != 0 {
		c.FacetLockTimeout = file.FacetLockTimeout
		c.sources["facet_lock_timeout"] = "file"
	}
	if file.StatusPageTitle != "" {
		c.StatusPageTitle = file.StatusPageTitle
		c.sources["status_page_title"] = "file"
	}
	if len(file.TrustedProxies) > 0 {
		c.TrustedProxies = file.TrustedProxies
		c.sources["trusted_proxies"] = "file"
	}
}

func (c *RhqConfig) applyEnvConfig() {
	if val := os.Getenv("RHQ_BIND_ADDRESS"); val != "" {
		c.BindAddress = val
		c.sources["bind_address"] = "environment"
	}
	if val := os.Getenv("RHQ_PORT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.Port = i
			c.sources["port"] = "environment"
		}
	}
	if val := os.Getenv("DATABASE_URL"); val != "" {
		c.DatabaseURL = val
		c.sources["database_url"] = "environment"
	}
	if val := os.Getenv("RHQ_JWT_SECRET"); val != "" {
		c.JWTSecret = val
		c.sources["jwt_secret"] = "environment"
	}
	if val := os.Getenv("RHQ_TOKEN_TTL"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.TokenTTL = i
			c.sources["token_ttl"] = "environment"
		}
	}
	if val := os.Getenv("RHQ_LOG_LEVEL"); val != "" {
		c.LogLevel = strings.ToLower(val)
		c.sources["log_level"] = "environment"
	}
	if val := os.Getenv("RHQ_MAX_PAGE_SIZE"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.MaxPageSize = i
			c.sources["max_page_size"] = "environment"
		}
	}
	if val := os.Getenv("RHQ_UPDATE_WORKERS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.UpdateWorkers = i
			c.sources["update_workers"] = "environment"
		}
	}
	if val := os.Getenv("RHQ_FACET_LOCK_TIMEOUT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.FacetLockTimeout = i
			c.sources["facet_lock_timeout"] = "environment"
		}
	}
	if val := os.Getenv("RHQ_DRIFT_WATCH_ENABLED"); val != "" {
		c.DriftWatchEnabled = val == "true" || val == "1"
		c.sources["drift_watch_enabled"] = "environment"
	}
	if val := os.Getenv("RHQ_STATUS_PAGE_TITLE"); val != "" {
		c.StatusPageTitle = val
		c.sources["status_page_title"] = "environment"
	}
	if val := os.Getenv("RHQ_TRUSTED_PROXIES"); val != "" {
		c.TrustedProxies = splitAndTrim(val)
		c.sources["trusted_proxies"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *RhqConfig) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *RhqConfig) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// Address returns host:port for the listener
func (c *RhqConfig) Address() string {
	return net.JoinHostPort(c.BindAddress, strconv.Itoa(c.Port))
}

// TokenLifetime returns the token TTL as a duration
func (c *RhqConfig) TokenLifetime() time.Duration {
	return time.Duration(c.TokenTTL) * time.Second
}

// FacetTimeout returns the facet lock timeout as a duration
func (c *RhqConfig) FacetTimeout() time.Duration {
	return time.Duration(c.FacetLockTimeout) * time.Second
}

// IsTrustedProxy checks if an IP is from a trusted proxy
func (c *RhqConfig) IsTrustedProxy(ip string) bool {
	if len(c.TrustedProxies) == 0 {
		return false
	}

	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return false
	}

	for _, cidr := range c.TrustedProxies {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			// Try as plain IP
			if net.ParseIP(cidr) != nil && cidr == ip {
				return true
			}
			continue
		}
		if network.Contains(parsedIP) {
			return true
		}
	}
	return false
}

// Validate validates the configuration
func (c *RhqConfig) Validate() error {
	for _, cidr := range c.TrustedProxies {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			if net.ParseIP(cidr) == nil {
				return fmt.Errorf("invalid trusted_proxies value: %s", cidr)
			}
		}
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token_ttl must be positive, got %d", c.TokenTTL)
	}
	if c.MaxPageSize <= 0 {
		return fmt.Errorf("max_page_size must be positive, got %d", c.MaxPageSize)
	}
	if c.UpdateWorkers <= 0 {
		return fmt.Errorf("update_workers must be positive, got %d", c.UpdateWorkers)
	}
	if c.FacetLockTimeout <= 0 {
		return fmt.Errorf("facet_lock_timeout must be positive, got %d", c.FacetLockTimeout)
	}

	validLevel := false
	for _, l := range ValidLogLevels {
		if c.LogLevel == l {
			validLevel = true
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log_level: %s", c.LogLevel)
	}

	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *RhqConfig) Attributes() []Attribute {
	secret := ""
	if c.JWTSecret != "" {
		secret = "********"
	}
	return []Attribute{
		{Name: "bind_address", Value: c.BindAddress, Source: c.Source("bind_address")},
		{Name: "port", Value: strconv.Itoa(c.Port), Source: c.Source("port")},
		{Name: "database_url", Value: redactURL(c.DatabaseURL), Source: c.Source("database_url")},
		{Name: "jwt_secret", Value: secret, Source: c.Source("jwt_secret")},
		{Name: "token_ttl", Value: strconv.Itoa(c.TokenTTL), Source: c.Source("token_ttl")},
		{Name: "log_level", Value: c.LogLevel, Source: c.Source("log_level")},
		{Name: "max_page_size", Value: strconv.Itoa(c.MaxPageSize), Source: c.Source("max_page_size")},
		{Name: "update_workers", Value: strconv.Itoa(c.UpdateWorkers), Source: c.Source("update_workers")},
		{Name: "facet_lock_timeout", Value: strconv.Itoa(c.FacetLockTimeout), Source: c.Source("facet_lock_timeout")},
		{Name: "drift_watch_enabled", Value: strconv.FormatBool(c.DriftWatchEnabled), Source: c.Source("drift_watch_enabled")},
		{Name: "status_page_title", Value: c.StatusPageTitle, Source: c.Source("status_page_title")},
		{Name: "trusted_proxies", Value: strings.Join(c.TrustedProxies, ","), Source: c.Source("trusted_proxies")},
	}
}

// FormatText returns a text representation of the configuration
func (c *RhqConfig) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-25s %-40s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-25s %-40s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-25s %-40s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *RhqConfig) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// redactURL hides the password of a connection URL
func redactURL(s string) string {
	at := strings.LastIndex(s, "@")
	scheme := strings.Index(s, "://")
	if at < 0 || scheme < 0 || scheme > at {
		return s
	}
	creds := s[scheme+3 : at]
	if colon := strings.Index(creds, ":"); colon >= 0 {
		return s[:scheme+3] + creds[:colon] + ":****" + s[at:]
	}
	return s
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
