package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/secnet-tools/nsg-report/pkg/models/domain"
	"github.com/secnet-tools/nsg-report/pkg/services/report/export"
)

type ExportCmd struct {
	inputs []string
	format string
	outDir string
	output io.Writer
}

func NewExportCmd(output io.Writer) *cobra.Command {
	ec := &ExportCmd{output: output}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Compile analysis files into report exports",
		RunE:  ec.run,
	}

	cmd.Flags().StringSliceVar(&ec.inputs, "input", nil, "Path to an analysis result JSON file (repeatable)")
	cmd.Flags().StringVar(&ec.format, "format", "csv", "Output format: csv or pdf")
	cmd.Flags().StringVar(&ec.outDir, "out", ".", "Directory to write the exported file to")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, args []string) error {
	results := make([]*domain.AnalysisResult, 0, len(ec.inputs))
	for _, path := range ec.inputs {
		res, err := loadAnalysis(path)
		if err != nil {
			return err
		}
		results = append(results, res)
	}

	var (
		file *export.File
		err  error
	)
	switch ec.format {
	case "csv":
		file, err = export.Delimited(results, time.Now())
	case "pdf":
		if len(results) != 1 {
			return fmt.Errorf("pdf export takes exactly one --input, got %d", len(results))
		}
		file, err = export.Document(results[0], time.Now())
	default:
		return fmt.Errorf("unsupported format %q (expected csv or pdf)", ec.format)
	}
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	target := filepath.Join(ec.outDir, file.Name)
	if err := os.WriteFile(target, file.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}

	fmt.Fprintf(ec.output, "wrote %s (%d bytes)\n", target, len(file.Data))
	return nil
}

func loadAnalysis(path string) (*domain.AnalysisResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis file %s: %w", path, err)
	}
	var res domain.AnalysisResult
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("failed to parse analysis file %s: %w", path, err)
	}
	return &res, nil
}
