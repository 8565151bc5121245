package formatter

import (
	"encoding/csv"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/mvx/internal/models"
	th "github.com/desertthunder/mvx/internal/testing"
)

func sampleEntries() []models.WatchlistEntry {
	return []models.WatchlistEntry{
		{
			MovieID:     7,
			Title:       "Dark",
			Poster:      "https://image.example.com/t/p/w500/dark.jpg",
			VoteAverage: 8.7,
			Popularity:  120.5,
			Genres:      []string{"Drama", "Mystery"},
			Status:      "plan",
		},
		{
			MovieID:     9,
			Title:       "Severance",
			VoteAverage: 8.5,
			Popularity:  98.2,
			Genres:      []string{"Drama"},
			Status:      "plan",
		},
	}
}

func TestExportToCSV(t *testing.T) {
	data, err := ExportToCSV(sampleEntries())
	if err != nil {
		t.Fatalf("failed to export: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("exported CSV should parse: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(records))
	}
	if records[0][0] != "MovieID" || records[0][1] != "Title" {
		t.Errorf("unexpected header %v", records[0])
	}
	if records[1][0] != "7" || records[1][1] != "Dark" {
		t.Errorf("unexpected first row %v", records[1])
	}
	if records[1][4] != "Drama; Mystery" {
		t.Errorf("expected joined genres, got %q", records[1][4])
	}
}

func TestExportToMarkdown(t *testing.T) {
	t.Run("With Username", func(t *testing.T) {
		data, err := ExportToMarkdown("Test User", sampleEntries())
		if err != nil {
			t.Fatalf("failed to export: %v", err)
		}

		content := string(data)
		if !strings.Contains(content, "# Watchlist") {
			t.Error("expected title heading")
		}
		if !strings.Contains(content, "**User**: Test User") {
			t.Error("expected username subtitle")
		}
		if !strings.Contains(content, "| 1 | Dark |") {
			t.Error("expected table row for Dark")
		}
	})

	t.Run("Without Username", func(t *testing.T) {
		data, err := ExportToMarkdown("", sampleEntries())
		if err != nil {
			t.Fatalf("failed to export: %v", err)
		}
		if strings.Contains(string(data), "**User**") {
			t.Error("expected no username subtitle")
		}
	})
}

func TestExportToText(t *testing.T) {
	data, err := ExportToText(sampleEntries())
	if err != nil {
		t.Fatalf("failed to export: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "Watchlist (2 entries)") {
		t.Error("expected entry count header")
	}
	if !strings.Contains(content, "1. Dark - 8.7 [Drama, Mystery]") {
		t.Errorf("unexpected text output:\n%s", content)
	}
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sampleEntries(), false)
	if err != nil {
		t.Fatalf("failed to export: %v", err)
	}

	var decoded []models.WatchlistEntry
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("exported JSON should parse: %v", err)
	}
	if len(decoded) != 2 || decoded[0].MovieID != 7 {
		t.Errorf("unexpected decoded entries %+v", decoded)
	}
}

func TestWriteCSVExport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.csv")

	written, err := WriteCSVExport(sampleEntries(), path)
	if err != nil {
		t.Fatalf("failed to write export: %v", err)
	}
	if written != path {
		t.Errorf("expected path %s, got %s", path, written)
	}

	th.AssertFileExists(t, path)
	content := th.MustReadFile(t, path)
	if !strings.Contains(content, "Dark") {
		t.Error("expected entry data in file")
	}
}

func TestWriteMarkdownExport(t *testing.T) {
	dir := t.TempDir()
	outputDir := filepath.Join(dir, "watchlist")

	result, err := WriteMarkdownExport("Test User", sampleEntries(), outputDir, false)
	if err != nil {
		t.Fatalf("failed to write export: %v", err)
	}

	if result.Directory != outputDir {
		t.Errorf("expected directory %s, got %s", outputDir, result.Directory)
	}
	if len(result.Files) != 1 {
		t.Fatalf("expected one file, got %v", result.Files)
	}
	th.AssertFileExists(t, filepath.Join(outputDir, "README.md"))
	if len(result.Posters) != 0 {
		t.Errorf("expected no posters without the flag, got %v", result.Posters)
	}
}

func TestWriteTextExport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.txt")

	if _, err := WriteTextExport(sampleEntries(), path); err != nil {
		t.Fatalf("failed to write export: %v", err)
	}
	th.AssertFileExists(t, path)
}

func TestDownloadImage(t *testing.T) {
	t.Run("Empty URL", func(t *testing.T) {
		if _, err := DownloadImage(""); err == nil {
			t.Error("expected error for empty URL")
		}
	})
}
