package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/secnet-tools/nsg-report/pkg/runtime/terminal/commands"
)

// CLI represents the command-line interface
type CLI struct {
	reporter *Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reporter: NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd(output io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nsg-report",
		Short: "NSG analysis report compiler",
	}

	cmd.AddCommand(commands.NewExportCmd(output))
	cmd.AddCommand(commands.NewInspectCmd(cli.reporter.Handle))

	return cmd
}
