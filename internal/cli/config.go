// Config loading for the tabview CLI.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/tabview/internal/logging"
	"github.com/mesh-intelligence/tabview/internal/paths"
	"github.com/mesh-intelligence/tabview/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyBackend  = "backend"
	cfgKeyDataDir  = "data_dir"
	cfgKeyPageSize = "page_size"
	cfgKeyLocale   = "locale"
	cfgKeyLogLevel = "log_level"
)

// errInvalidConfig marks a config.yaml that parses but holds bad values.
var errInvalidConfig = errors.New("invalid configuration")

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend  string `yaml:"backend"`
	DataDir  string `yaml:"data_dir,omitempty"`
	PageSize int    `yaml:"page_size"`
	Locale   string `yaml:"locale"`
	LogLevel string `yaml:"log_level"`
}

// defaultConfig is written on first run.
var defaultConfig = configFile{
	Backend:  types.BackendSQLite,
	PageSize: types.DefaultPageSize,
	Locale:   types.DefaultLocale,
	LogLevel: logging.DefaultLevel,
}

// settings are the resolved configuration values.
type settings struct {
	Backend  string
	DataDir  string
	PageSize int
	Locale   string
	LogLevel string
}

// storeConfig returns the store configuration for dataDir.
func (s settings) storeConfig(dataDir string) types.Config {
	return types.Config{
		Backend:  s.Backend,
		DataDir:  dataDir,
		PageSize: s.PageSize,
		Locale:   s.Locale,
	}
}

// loadConfig reads config.yaml from configDir using Viper. It creates the
// directory and a default config.yaml on first run. The page_size, locale
// and log_level keys may be overridden by TABVIEW_PAGE_SIZE, TABVIEW_LOCALE
// and TABVIEW_LOG_LEVEL.
func loadConfig(configDir string) (settings, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return settings{}, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := writeConfigIfMissing(filepath.Join(configDir, paths.ConfigFileName)); err != nil {
		return settings{}, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultConfig.Backend)
	v.SetDefault(cfgKeyPageSize, defaultConfig.PageSize)
	v.SetDefault(cfgKeyLocale, defaultConfig.Locale)
	v.SetDefault(cfgKeyLogLevel, defaultConfig.LogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	for _, key := range []string{cfgKeyPageSize, cfgKeyLocale, cfgKeyLogLevel} {
		_ = v.BindEnv(key, "TABVIEW_"+strings.ToUpper(key))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	s := settings{
		Backend:  v.GetString(cfgKeyBackend),
		DataDir:  v.GetString(cfgKeyDataDir),
		PageSize: v.GetInt(cfgKeyPageSize),
		Locale:   v.GetString(cfgKeyLocale),
		LogLevel: v.GetString(cfgKeyLogLevel),
	}
	if err := s.storeConfig("").Validate(); err != nil {
		return settings{}, fmt.Errorf("%w in %s: %w", errInvalidConfig, paths.ConfigFileName, err)
	}
	return s, nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist.
func writeConfigIfMissing(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	header := []byte("# tabview configuration\n")
	return os.WriteFile(path, append(header, data...), 0o644)
}
