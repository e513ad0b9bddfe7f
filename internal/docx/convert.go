// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xiongbear2005/docx2md/internal/markdown"
	"github.com/xiongbear2005/docx2md/internal/omml"
	"github.com/xiongbear2005/docx2md/pkg/types"
)

// defaultImageDir is the subdirectory next to the Markdown output that
// receives extracted images.
const defaultImageDir = "images"

// Tracker remembers conversion outcomes between runs so unchanged
// documents can be skipped. A nil Tracker converts everything and
// remembers nothing.
type Tracker interface {
	// NeedsConversion reports whether the source at path changed since
	// it was last recorded.
	NeedsConversion(path string, modTime time.Time) bool
	// Record stores the outcome of one conversion.
	Record(rec types.DocumentRecord) error
}

// Result holds the outcome of one document conversion.
type Result struct {
	OutputPath string
	Stats      types.ConversionStatistics
	Status     types.ConversionStatus
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of documents processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any documents failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// OutputPath derives the Markdown path for a source document. An empty
// outDir keeps the output next to its source.
func OutputPath(src, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)) + ".md"
	if outDir == "" {
		return filepath.Join(filepath.Dir(src), base)
	}
	return filepath.Join(outDir, base)
}

// ConvertFile converts a single document to Markdown, writing the result
// and its extracted images next to outPath. Per-file status goes to w.
// Formulas that cannot be converted degrade to placeholders and make the
// result partial rather than failing the file.
func ConvertFile(src, outPath string, cfg types.ConvertConfig, w io.Writer) (Result, error) {
	base := filepath.Base(src)

	doc, err := Open(src)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return Result{Status: types.ConversionFailed}, err
	}
	defer doc.Close()

	conv := omml.NewConverter()
	if cfg.DisplayLengthThreshold > 0 {
		conv.DisplayLengthThreshold = cfg.DisplayLengthThreshold
	}

	imageDir := cfg.ImageDir
	if imageDir == "" {
		imageDir = defaultImageDir
	}
	imageRoot := filepath.Join(filepath.Dir(outPath), filepath.FromSlash(imageDir))
	walker := NewWalker(doc, conv, imageDir, imageRoot, w)

	body := markdown.JoinBlocks(walker.Blocks())
	stats := conv.Statistics()
	stats.ImageCount = walker.Images()

	content := body
	if cfg.Frontmatter {
		fm, err := markdown.NewFrontmatter(src, time.Now().UTC(), stats).Render()
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
			return Result{Status: types.ConversionFailed}, err
		}
		content = fm + body
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
			return Result{Status: types.ConversionFailed}, err
		}
	}
	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return Result{Status: types.ConversionFailed}, err
	}

	status := types.ConversionDone
	if stats.PlaceholderCount > 0 {
		status = types.ConversionPartial
		fmt.Fprintf(w, "converted: %s (%d inline, %d display, %d formulas, %d images, %d placeholders)\n",
			base, stats.InlineCount, stats.DisplayCount, stats.TotalFormulas(), stats.ImageCount, stats.PlaceholderCount)
	} else {
		fmt.Fprintf(w, "converted: %s (%d inline, %d display, %d formulas, %d images)\n",
			base, stats.InlineCount, stats.DisplayCount, stats.TotalFormulas(), stats.ImageCount)
	}
	return Result{OutputPath: outPath, Stats: stats, Status: status}, nil
}

// RecordOutcome stores a conversion result in the tracker. Catalog
// problems are reported as warnings so they never fail a conversion
// that already succeeded.
func RecordOutcome(tracker Tracker, src string, modTime time.Time, res Result, w io.Writer) {
	if tracker == nil {
		return
	}
	rec := types.DocumentRecord{
		Path:        src,
		OutputPath:  res.OutputPath,
		ModTime:     modTime,
		ConvertedAt: time.Now().UTC(),
		Status:      res.Status,
		Stats:       res.Stats,
	}
	if err := tracker.Record(rec); err != nil {
		fmt.Fprintf(w, "warning: catalog: %v\n", err)
	}
}

// ConvertBatch processes a list of documents, printing per-file status
// to w and returning a summary. Documents the tracker knows to be
// unchanged are skipped; fresh outcomes are recorded back into it.
func ConvertBatch(paths []string, cfg types.ConvertConfig, tracker Tracker, w io.Writer) BatchResult {
	var result BatchResult
	for _, src := range paths {
		info, err := os.Stat(src)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", filepath.Base(src), err)
			result.Failed++
			continue
		}
		if tracker != nil && !tracker.NeedsConversion(src, info.ModTime()) {
			fmt.Fprintf(w, "skipped: %s (unchanged)\n", filepath.Base(src))
			result.Skipped++
			continue
		}

		res, err := ConvertFile(src, OutputPath(src, cfg.OutDir), cfg, w)
		if err != nil {
			result.Failed++
			continue
		}
		result.Converted++
		RecordOutcome(tracker, src, info.ModTime(), res, w)
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}
