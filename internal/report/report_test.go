package report_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dirscope/dirscope/internal/classify"
	"github.com/dirscope/dirscope/internal/report"
	"github.com/dirscope/dirscope/internal/scan"
)

func sampleReport() *scan.Report {
	records := []scan.DirectoryRecord{
		{
			Path:      "/data/videos",
			FileCount: 1,
			Bytes:     2000,
			Percent:   2000.0 / 35.0,
			Categories: map[classify.Category]int64{
				classify.Videos: 2000,
			},
		},
		{
			Path:      "/data",
			FileCount: 2,
			Bytes:     1500,
			Percent:   1500.0 / 35.0,
			Categories: map[classify.Category]int64{
				classify.Images: 1000,
				classify.Office: 500,
			},
		},
		{
			Path:       "/data/locked",
			ErrMessage: `accessing "/data/locked": permission denied`,
		},
	}

	return &scan.Report{
		Root:     "/data",
		Records:  records,
		Filtered: records[:2],
		Categories: []scan.CategorySummary{
			{Category: classify.Videos, Bytes: 2000, FileCount: 1, Percent: 2000.0 / 35.0},
			{Category: classify.Images, Bytes: 1000, FileCount: 1, Percent: 1000.0 / 35.0},
			{Category: classify.Office, Bytes: 500, FileCount: 1, Percent: 500.0 / 35.0},
		},
		Stats: scan.Statistics{
			Directories: 3,
			Files:       3,
			Bytes:       3500,
			CategoryBytes: map[classify.Category]int64{
				classify.Videos: 2000,
				classify.Images: 1000,
				classify.Office: 500,
			},
			CategoryFiles: map[classify.Category]int64{
				classify.Videos: 1,
				classify.Images: 1,
				classify.Office: 1,
			},
			Inaccessible: 1,
			Elapsed:      42 * time.Millisecond,
		},
		Inaccessible: []scan.AccessError{
			{Path: "/data/locked", Kind: scan.AccessPermission, Err: os.ErrPermission},
		},
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "42.86%", report.FormatPercent(42.857142))
	assert.Equal(t, "0.00%", report.FormatPercent(0))
	assert.Equal(t, "100.00%", report.FormatPercent(100))

	// Tiny non-zero shares are clamped, never shown as zero.
	assert.Equal(t, "<0.01%", report.FormatPercent(0.004))
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, sampleReport(), 2))

	out := buf.String()
	assert.Contains(t, out, "/data/videos")
	assert.Contains(t, out, "3500 bytes")
	assert.Contains(t, out, "Videos")
	assert.Contains(t, out, "Access errors")
	assert.NotContains(t, out, "partial")
}

func TestWriteTextMarksPartialReports(t *testing.T) {
	rep := sampleReport()
	rep.Partial = true

	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, rep, 10))

	assert.Contains(t, buf.String(), "results are partial")
}

func TestWriteCSVKeepsExactBytes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, sampleReport()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4) // header + 3 records

	assert.Equal(t, "rank", rows[0][0])
	assert.Equal(t, "/data/videos", rows[1][1])
	assert.Equal(t, "2000", rows[1][2])
	assert.Equal(t, "videos", rows[1][5])

	// Errored records carry their message and zero bytes.
	assert.Equal(t, "0", rows[3][2])
	assert.NotEmpty(t, rows[3][6])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf, sampleReport()))

	var doc struct {
		Summary struct {
			Bytes       int64   `json:"total_size_bytes"`
			SuccessRate float64 `json:"success_rate"`
		} `json:"summary"`
		Directories []struct {
			Rank     int    `json:"rank"`
			Path     string `json:"path"`
			Bytes    int64  `json:"size_bytes"`
			Dominant string `json:"dominant_category"`
		} `json:"directories"`
		Inaccessible []struct {
			Path string `json:"path"`
			Kind string `json:"kind"`
		} `json:"inaccessible_paths"`
		Partial bool `json:"partial"`
	}

	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, int64(3500), doc.Summary.Bytes)
	assert.InDelta(t, 2.0/3.0, doc.Summary.SuccessRate, 1e-9)

	require.Len(t, doc.Directories, 3)
	assert.Equal(t, 1, doc.Directories[0].Rank)
	assert.Equal(t, int64(2000), doc.Directories[0].Bytes)
	assert.Equal(t, "videos", doc.Directories[0].Dominant)

	require.Len(t, doc.Inaccessible, 1)
	assert.Equal(t, "permission", doc.Inaccessible[0].Kind)
	assert.False(t, doc.Partial)
}

func TestWriteErrorLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-access.txt")

	require.NoError(t, report.WriteErrorLog(path, sampleReport().Inaccessible))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "Total inaccessible directories: 1")
	assert.Contains(t, content, "/data/locked\tpermission")
	assert.True(t, strings.HasPrefix(content, "# dirscope"))
}
