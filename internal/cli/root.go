// Package cli implements the prototypes command-line interface.
package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/prototypes/internal/fixtures"
	"github.com/mesh-intelligence/prototypes/internal/logging"
	"github.com/mesh-intelligence/prototypes/internal/paths"
	"github.com/mesh-intelligence/prototypes/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// errVerifyMismatch is returned by verify when the engines disagree.
var errVerifyMismatch = errors.New("go and sql results differ")

// sysError marks failures of the environment rather than of the input.
type sysError struct{ err error }

func (e *sysError) Error() string { return e.err.Error() }
func (e *sysError) Unwrap() error { return e.err }

func systemErr(err error) error {
	if err == nil {
		return nil
	}
	return &sysError{err: err}
}

// exitCode maps an error returned by the root command to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *sysError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	format    string
	logLevel  string
}

// app is the state shared by one invocation of the root command.
type app struct {
	flags   rootFlags
	cfg     types.Config
	logger  *slog.Logger
	runID   string
	cleanup func()
}

// NewRootCmd creates the top-level "prototypes" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	return newRoot(&app{})
}

func newRoot(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "prototypes",
		Short: "Relational queries over in-memory fixture datasets",
		Long: "prototypes runs filter, reduce, sort and join queries over a set of\n" +
			"small fixture datasets and cross-checks them against a SQLite mirror.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" || cmd.Name() == "help" {
				return nil
			}
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/prototypes)")
	pf.StringVar(&a.flags.dataDir, "data-dir", "", "directory of JSONL fixtures overriding the embedded set")
	pf.StringVar(&a.flags.format, "format", "", "output format: json or yaml")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		newDatasetsCmd(a),
		newQueriesCmd(a),
		newRunCmd(a),
		newVerifyCmd(a),
		newExportCmd(a),
		newMetricsCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	a := &app{}
	err := newRoot(a).Execute()
	a.close()
	return exitCode(err)
}

// setup resolves configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return systemErr(fmt.Errorf("resolving config dir: %w", err))
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return systemErr(err)
	}
	if a.flags.format != "" {
		cfg.Format = a.flags.format
	}
	if a.flags.logLevel != "" {
		cfg.LogLevel = a.flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	logger, cleanup, err := logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		SeqURL: cfg.SeqURL,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.runID = newRunID()
	a.logger = logger.With("invocation_id", a.runID)
	a.cleanup = cleanup
	a.logger.Debug("config_loaded", "config_dir", configDir, "format", cfg.Format)
	return nil
}

func (a *app) close() {
	if a.cleanup != nil {
		a.cleanup()
		a.cleanup = nil
	}
}

// loadFixtures loads the embedded fixtures, overlaid with the data dir when
// one is configured.
func (a *app) loadFixtures() (*types.Fixtures, error) {
	dir, err := paths.ResolveDataDir(a.flags.dataDir, a.cfg.DataDir)
	if err != nil {
		return nil, systemErr(fmt.Errorf("resolving data dir: %w", err))
	}
	fx, err := fixtures.LoadDir(dir)
	if err != nil {
		return nil, systemErr(err)
	}
	a.logger.Debug("fixtures_loaded", "data_dir", dir, "collections", len(fixtures.Counts(fx)))
	return fx, nil
}

func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
