package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/dirscope/dirscope/internal/scan"
)

// jsonDocument is the structured output shape. Exact byte integers are
// always retained alongside the humanized strings.
type jsonDocument struct {
	Summary      jsonSummary     `json:"summary"`
	Directories  []jsonDirectory `json:"directories"`
	Content      []jsonCategory  `json:"content_analysis"`
	Inaccessible []jsonAccess    `json:"inaccessible_paths"`
	Partial      bool            `json:"partial"`
}

type jsonSummary struct {
	TargetPath     string  `json:"target_path"`
	Directories    int64   `json:"total_directories"`
	Files          int64   `json:"total_files"`
	Bytes          int64   `json:"total_size_bytes"`
	SizeHuman      string  `json:"total_size_human"`
	ElapsedSeconds float64 `json:"scan_duration"`
	ErrorCount     int64   `json:"error_count"`
	SuccessRate    float64 `json:"success_rate"`
}

type jsonDirectory struct {
	Rank      int     `json:"rank"`
	Path      string  `json:"path"`
	Bytes     int64   `json:"size_bytes"`
	SizeHuman string  `json:"size_human"`
	Percent   float64 `json:"percentage"`
	FileCount int     `json:"file_count"`
	Dominant  string  `json:"dominant_category,omitempty"`
	HasError  bool    `json:"has_error"`
	Error     string  `json:"error_message,omitempty"`
}

type jsonCategory struct {
	Category    string  `json:"category"`
	DisplayName string  `json:"display_name"`
	Bytes       int64   `json:"size_bytes"`
	Percent     float64 `json:"percentage"`
	FileCount   int64   `json:"file_count"`
}

type jsonAccess struct {
	Path string `json:"path"`
	Kind string `json:"kind"`
}

// WriteJSON renders the full report as indented JSON.
func WriteJSON(w io.Writer, rep *scan.Report) error {
	doc := jsonDocument{
		Summary: jsonSummary{
			TargetPath:     rep.Root,
			Directories:    rep.Stats.Directories,
			Files:          rep.Stats.Files,
			Bytes:          rep.Stats.Bytes,
			SizeHuman:      humanize.IBytes(uint64(rep.Stats.Bytes)), //nolint:gosec // Bytes is non-negative
			ElapsedSeconds: rep.Stats.Elapsed.Seconds(),
			ErrorCount:     rep.Stats.Inaccessible,
			SuccessRate:    rep.Stats.SuccessRate(),
		},
		Directories:  make([]jsonDirectory, 0, len(rep.Records)),
		Content:      make([]jsonCategory, 0, len(rep.Categories)),
		Inaccessible: make([]jsonAccess, 0, len(rep.Inaccessible)),
		Partial:      rep.Partial,
	}

	for i, rec := range rep.Records {
		dir := jsonDirectory{
			Rank:      i + 1,
			Path:      rec.Path,
			Bytes:     rec.Bytes,
			SizeHuman: humanize.IBytes(uint64(rec.Bytes)), //nolint:gosec // Bytes is non-negative
			Percent:   rec.Percent,
			FileCount: rec.FileCount,
			HasError:  rec.HasError(),
			Error:     rec.ErrMessage,
		}
		if rec.FileCount > 0 {
			dir.Dominant = string(rec.Dominant())
		}

		doc.Directories = append(doc.Directories, dir)
	}

	for _, cat := range rep.Categories {
		doc.Content = append(doc.Content, jsonCategory{
			Category:    string(cat.Category),
			DisplayName: cat.Category.DisplayName(),
			Bytes:       cat.Bytes,
			Percent:     cat.Percent,
			FileCount:   cat.FileCount,
		})
	}

	for _, access := range rep.Inaccessible {
		doc.Inaccessible = append(doc.Inaccessible, jsonAccess{
			Path: access.Path,
			Kind: access.Kind.String(),
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return err
	}

	return nil
}
