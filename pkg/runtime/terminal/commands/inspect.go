package commands

import (
	"github.com/spf13/cobra"

	"github.com/secnet-tools/nsg-report/pkg/models/domain"
)

type InspectCmd struct {
	input  string
	handle func(*domain.AnalysisResult) error
}

// NewInspectCmd prints a console summary of one analysis file.
func NewInspectCmd(handle func(*domain.AnalysisResult) error) *cobra.Command {
	ic := &InspectCmd{handle: handle}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print a summary of an analysis result file",
		RunE:  ic.run,
	}

	cmd.Flags().StringVar(&ic.input, "input", "", "Path to an analysis result JSON file")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (ic *InspectCmd) run(cmd *cobra.Command, args []string) error {
	res, err := loadAnalysis(ic.input)
	if err != nil {
		return err
	}
	return ic.handle(res)
}
