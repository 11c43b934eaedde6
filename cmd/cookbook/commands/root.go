// Package commands implements the CLI commands for the cookbook service.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/cookbook/internal/adapters/config" //nolint:depguard // settings feed flag defaults
	"go.trai.ch/cookbook/internal/app"
	"go.trai.ch/cookbook/internal/build"
	"go.trai.ch/cookbook/internal/core/domain"
	"go.trai.ch/cookbook/internal/core/ports"
)

// CLI represents the command line interface for cookbook.
type CLI struct {
	app      Application
	settings *config.Settings
	logger   ports.Logger
	rootCmd  *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	AddEntry(ctx context.Context, raw domain.RawEntry) error
	Summarize(ctx context.Context, name string) (*domain.Summary, error)
	CleanName(raw string) (string, bool)
	Seed(ctx context.Context, path string) (app.SeedReport, error)
	WatchSeed(ctx context.Context, path string) error
}

// New creates a new CLI instance with the given app.
func New(a Application, settings *config.Settings, log ports.Logger) *CLI {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	rootCmd := &cobra.Command{
		Use:           "cookbook",
		Short:         "A registry of recipes and ingredients",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	// Read by main before components are built; declared here so cobra accepts it.
	rootCmd.PersistentFlags().StringP(ConfigFlag, "c", "", "Path to a settings file")

	c := &CLI{
		app:      a,
		settings: settings,
		logger:   log,
		rootCmd:  rootCmd,
	}

	rootCmd.AddCommand(c.newServeCmd())
	rootCmd.AddCommand(c.newSummaryCmd())
	rootCmd.AddCommand(c.newAddCmd())
	rootCmd.AddCommand(c.newParseCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// ConfigFlag names the persistent flag selecting a settings file.
const ConfigFlag = "config"

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// seed loads path into the registry when set.
func (c *CLI) seed(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	report, err := c.app.Seed(ctx, path)
	if err != nil {
		return err
	}
	c.logger.Debug("seed file loaded", "path", path, "admitted", report.Admitted, "skipped", report.Skipped)
	return nil
}
