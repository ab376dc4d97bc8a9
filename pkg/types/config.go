package types

import (
	"errors"

	"golang.org/x/text/language"
)

// Config holds backend selection and view parameters for Store.Attach and
// the CLI.
type Config struct {
	Backend  string `json:"backend" yaml:"backend"`
	DataDir  string `json:"data_dir" yaml:"data_dir"`
	PageSize int    `json:"page_size" yaml:"page_size"`
	Locale   string `json:"locale" yaml:"locale"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// DefaultLocale is the collation locale used when none is configured.
const DefaultLocale = "en"

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrLocaleInvalid  = errors.New("invalid locale tag")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. A zero PageSize and an
// empty Locale are valid and mean the defaults.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.PageSize < 0 {
		return ErrInvalidPageSize
	}
	if c.Locale != "" {
		if _, err := language.Parse(c.Locale); err != nil {
			return ErrLocaleInvalid
		}
	}
	return nil
}

// LanguageTag returns the configured locale as a language tag, falling back
// to DefaultLocale.
func (c Config) LanguageTag() language.Tag {
	if c.Locale != "" {
		if tag, err := language.Parse(c.Locale); err == nil {
			return tag
		}
	}
	return language.Make(DefaultLocale)
}

// EffectivePageSize returns PageSize, or DefaultPageSize when unset.
func (c Config) EffectivePageSize() int {
	if c.PageSize < 1 {
		return DefaultPageSize
	}
	return c.PageSize
}
