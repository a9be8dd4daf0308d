package terminal

import (
	"io"
	"os"

	"github.com/de-tools/cost-radar/pkg/runtime/terminal/commands"
	"github.com/de-tools/cost-radar/pkg/runtime/terminal/export"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	reporter *export.Reporter
	logger   zerolog.Logger
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
	Logger zerolog.Logger
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reporter: export.NewReporter(opts.Output),
		logger:   opts.Logger,
	}

	cli.rootCmd = cli.newRootCmd(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd(output io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "radar",
		Short: "AWS cost anomaly reporting tool",
	}

	cmd.AddCommand(commands.NewCollectCmd(cli.reporter, cli.logger))
	cmd.AddCommand(commands.NewProfilesCmd(output))

	return cmd
}
