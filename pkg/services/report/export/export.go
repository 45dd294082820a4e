// Package export packages compiled reports into deliverable files. It owns
// the naming contract, the single-file-vs-archive decision and the error
// boundary around rendering.
package export

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/secnet-tools/nsg-report/pkg/models/domain"
	"github.com/secnet-tools/nsg-report/pkg/services/report/render/csvrender"
	"github.com/secnet-tools/nsg-report/pkg/services/report/render/pdfrender"
	"github.com/secnet-tools/nsg-report/pkg/services/report/sections"
)

const reportKind = "nsg-analysis"

var (
	// ErrEmptySelection rejects an export with zero subjects before any
	// rendering begins.
	ErrEmptySelection = errors.New("no NSGs selected for export")
	// ErrMissingAnalysis rejects the document path when the AI analysis
	// aggregate is absent; the analysis step must run first.
	ErrMissingAnalysis = errors.New("AI analysis has not been run for this NSG")
	// ErrRenderFailed wraps any unexpected failure inside rendering; no
	// partial file is ever delivered.
	ErrRenderFailed = errors.New("report rendering failed")
)

// File is a named byte sequence ready for delivery. Delivery itself is the
// caller's concern.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Delimited compiles the lossless delimited report for the selected NSGs.
// A single subject yields one .csv file; more than one yields a zip archive
// with one entry per subject.
func Delimited(results []*domain.AnalysisResult, now time.Time) (f *File, err error) {
	defer recoverRender(&err)

	if len(results) == 0 {
		return nil, ErrEmptySelection
	}

	date := now.Format("2006-01-02")
	if len(results) == 1 {
		res := results[0]
		return &File{
			Name:        delimitedName(res.Name, date),
			ContentType: "text/csv",
			Data:        csvrender.Render(*res, sections.Build(*res), now),
		}, nil
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, res := range results {
		entry, werr := zw.Create(delimitedName(res.Name, date))
		if werr != nil {
			return nil, fmt.Errorf("%w: %v", ErrRenderFailed, werr)
		}
		if _, werr = entry.Write(csvrender.Render(*res, sections.Build(*res), now)); werr != nil {
			return nil, fmt.Errorf("%w: %v", ErrRenderFailed, werr)
		}
	}
	if werr := zw.Close(); werr != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, werr)
	}

	return &File{
		Name:        fmt.Sprintf("%s-reports-%s.zip", reportKind, date),
		ContentType: "application/zip",
		Data:        buf.Bytes(),
	}, nil
}

// Document compiles the paginated report for one NSG. The document path is
// single-subject and requires the AI analysis aggregate to be present.
func Document(res *domain.AnalysisResult, now time.Time) (f *File, err error) {
	defer recoverRender(&err)

	if res == nil {
		return nil, ErrEmptySelection
	}
	if res.AIAnalysis == nil {
		return nil, ErrMissingAnalysis
	}

	data, rerr := pdfrender.Render(*res, sections.Build(*res), now)
	if rerr != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, rerr)
	}

	return &File{
		Name:        fmt.Sprintf("%s-%s-%s.pdf", reportKind, res.Name, now.Format("2006-01-02")),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

func delimitedName(subject, date string) string {
	return fmt.Sprintf("%s-%s-%s.csv", reportKind, subject, date)
}

// recoverRender converts a panicking layout primitive into a plain export
// failure at the orchestrator boundary.
func recoverRender(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", ErrRenderFailed, r)
	}
}
