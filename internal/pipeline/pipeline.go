package pipeline

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_pipeline.go -package=mocks hs-exporter/internal/pipeline Fetcher,SheetWriter,Recorder

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"hs-exporter/internal/contextutil"
	"hs-exporter/internal/hscode"
)

const (
	// DefaultSourceURL is the UN Statistics Division "All HS codes and descriptions" workbook.
	// If it moves, look for the XLSX link under the HS section of
	// https://unstats.un.org/unsd/classifications/Econ/.
	DefaultSourceURL = "https://unstats.un.org/unsd/classifications/Econ/download/In%20Text/HSCodeandDescription.xlsx"
	// DefaultOutputFile is written relative to the working directory.
	DefaultOutputFile = "HS_2022_Codes.xlsx"
)

// Config selects where the pipeline reads from and writes to.
type Config struct {
	SourceURL  string
	OutputFile string
}

// DefaultConfig returns the configuration used by the CLI.
func DefaultConfig() Config {
	return Config{
		SourceURL:  DefaultSourceURL,
		OutputFile: DefaultOutputFile,
	}
}

// Fetcher downloads the source workbook.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// SheetWriter writes the tree and flat views to a workbook at path.
type SheetWriter interface {
	Write(tree []hscode.TreeRow, flat []hscode.FlatCodeRecord, path string) error
}

// Recorder stores a finished run in the catalog.
type Recorder interface {
	RecordRun(ctx context.Context, sourceURL, outputPath string, flat []hscode.FlatCodeRecord, treeCount int) (string, error)
}

// Result summarizes a completed run.
type Result struct {
	RunID      string // empty when no catalog is configured or recording failed
	OutputFile string
	FlatCount  int
	TreeCount  int
}

// Pipeline runs download, parse, tree build and export strictly in sequence.
type Pipeline struct {
	fetcher  Fetcher
	writer   SheetWriter
	recorder Recorder
	cfg      Config
	progress io.Writer
}

// NewPipeline creates a new export pipeline.
// recorder may be nil to skip cataloguing; progress may be nil to discard progress lines.
func NewPipeline(fetcher Fetcher, writer SheetWriter, recorder Recorder, cfg Config, progress io.Writer) *Pipeline {
	if progress == nil {
		progress = io.Discard
	}
	return &Pipeline{
		fetcher:  fetcher,
		writer:   writer,
		recorder: recorder,
		cfg:      cfg,
		progress: progress,
	}
}

// Config returns the configuration the pipeline was built with.
func (p *Pipeline) Config() Config {
	return p.cfg
}

// Run executes one export. The first failing stage aborts the run and its
// error is returned as is, so *hscode.FetchError, *hscode.SchemaError and
// *hscode.WriteError stay matchable with errors.As.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	logger := contextutil.LoggerFromContext(ctx)

	p.say("Downloading HS code data from UN...")
	data, err := p.fetcher.Fetch(ctx, p.cfg.SourceURL)
	if err != nil {
		logger.ErrorContext(ctx, "download failed", "url", p.cfg.SourceURL, "error", err)
		return nil, err
	}
	logger.InfoContext(ctx, "downloaded source workbook", "url", p.cfg.SourceURL, "bytes", len(data))

	p.say("Parsing HS code data...")
	flat, err := hscode.ParseWorkbook(bytes.NewReader(data))
	if err != nil {
		logger.ErrorContext(ctx, "parse failed", "error", err)
		return nil, err
	}
	logger.InfoContext(ctx, "parsed basic-level codes", "count", len(flat))

	p.say("Building tree view...")
	tree := hscode.BuildTree(flat)
	logger.DebugContext(ctx, "built tree view", "rows", len(tree))

	p.say("Exporting to Excel...")
	if err := p.writer.Write(tree, flat, p.cfg.OutputFile); err != nil {
		logger.ErrorContext(ctx, "export failed", "path", p.cfg.OutputFile, "error", err)
		return nil, err
	}
	p.say(fmt.Sprintf("Exported to %s", p.cfg.OutputFile))

	result := &Result{
		OutputFile: p.cfg.OutputFile,
		FlatCount:  len(flat),
		TreeCount:  len(tree),
	}

	if p.recorder != nil {
		runID, err := p.recorder.RecordRun(ctx, p.cfg.SourceURL, p.cfg.OutputFile, flat, len(tree))
		if err != nil {
			// The workbook is already in place; a catalog failure does not undo it.
			logger.WarnContext(ctx, "failed to record run in catalog", "error", err)
		} else {
			result.RunID = runID
		}
	}

	p.say("Done.")
	return result, nil
}

func (p *Pipeline) say(line string) {
	_, _ = fmt.Fprintln(p.progress, line)
}
