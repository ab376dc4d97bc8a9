// Package cli implements the tabview command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/tabview/internal/logging"
	"github.com/mesh-intelligence/tabview/internal/paths"
	"github.com/mesh-intelligence/tabview/pkg/tabview"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError is a command failure with the exit code it maps to.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// userError reports bad input: unknown datasets, malformed flags or JSON.
func userError(format string, args ...any) error {
	return &exitError{code: exitUserError, err: fmt.Errorf(format, args...)}
}

// sysError reports a failure of the environment: file system, database.
func sysError(format string, args ...any) error {
	return &exitError{code: exitSysError, err: fmt.Errorf(format, args...)}
}

// rootFlags holds global flag values.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	logLevel  string
}

// session is the state shared by the subcommands of one root command.
type session struct {
	flags     rootFlags
	configDir string
	settings  settings
	logger    *zap.Logger
}

// NewRootCmd creates the top-level "tabview" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	s := &session{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "tabview",
		Short: "Filter, search, sort and page ESG datasets",
		Long: `tabview serves the tabular views of an ESG reporting dashboard over
datasets kept as JSONL files: holdings, companies, reports, and any
dataset you add.`,
		Version:           tabview.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: s.setup,
	}

	root.PersistentFlags().StringVar(&s.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&s.flags.dataDir, "data-dir", "", "data directory (default: platform data dir)")
	root.PersistentFlags().BoolVar(&s.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().StringVar(&s.flags.logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(s))
	root.AddCommand(newDatasetsCmd(s))
	root.AddCommand(newListCmd(s))
	root.AddCommand(newFacetsCmd(s))
	root.AddCommand(newGetCmd(s))
	root.AddCommand(newSetCmd(s))
	root.AddCommand(newDeleteCmd(s))

	return root
}

// setup loads the configuration and installs the logger.
func (s *session) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(s.flags.configDir)
	if err != nil {
		return sysError("resolve config dir: %w", err)
	}
	cfg, err := loadConfig(configDir)
	if errors.Is(err, errInvalidConfig) {
		return userError("%w", err)
	}
	if err != nil {
		return sysError("load config: %w", err)
	}

	level := cfg.LogLevel
	if s.flags.logLevel != "" {
		level = s.flags.logLevel
	}
	logger, err := logging.NewWithWriter(level, cmd.ErrOrStderr())
	if err != nil {
		return userError("%w", err)
	}
	zap.ReplaceGlobals(logger)

	s.configDir = configDir
	s.settings = cfg
	s.logger = logger
	logger.Debug("configuration loaded",
		zap.String("config_dir", configDir),
		zap.String("backend", cfg.Backend),
		zap.Int("page_size", cfg.PageSize),
		zap.String("locale", cfg.Locale))
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	err := root.Execute()
	return exitCode(root.ErrOrStderr(), err)
}

// exitCode prints err to w and maps it to an exit code. Errors that carry
// no code come from cobra's argument and flag parsing and count as user
// errors.
func exitCode(w io.Writer, err error) int {
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(w, "tabview:", err)
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}
