// package formatter exports watchlist data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/shared"
)

// ExportToCSV converts watchlist entries to CSV with columns:
// MovieID, Title, Rating, Popularity, Genres, Status, Poster
func ExportToCSV(entries []models.WatchlistEntry) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"MovieID", "Title", "Rating", "Popularity", "Genres", "Status", "Poster"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, entry := range entries {
		record := []string{
			strconv.Itoa(entry.MovieID),
			entry.Title,
			strconv.FormatFloat(entry.VoteAverage, 'f', 1, 64),
			strconv.FormatFloat(entry.Popularity, 'f', 1, 64),
			strings.Join(entry.Genres, "; "),
			entry.Status,
			entry.Poster,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts watchlist entries to a Markdown table.
// Username is optional and rendered as a subtitle when present.
func ExportToMarkdown(username string, entries []models.WatchlistEntry) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Watchlist\n\n")
	if username != "" {
		buf.WriteString(fmt.Sprintf("**User**: %s\n\n", username))
	}
	buf.WriteString(fmt.Sprintf("**Entries**: %d\n\n", len(entries)))

	buf.WriteString("| # | Title | Rating | Popularity | Genres | Status |\n")
	buf.WriteString("|---|-------|--------|------------|--------|--------|\n")
	for i, entry := range entries {
		buf.WriteString(fmt.Sprintf("| %d | %s | %.1f | %.1f | %s | %s |\n",
			i+1, entry.Title, entry.VoteAverage, entry.Popularity,
			strings.Join(entry.Genres, ", "), entry.Status))
	}

	return buf.Bytes(), nil
}

// ExportToText converts watchlist entries to plain text.
func ExportToText(entries []models.WatchlistEntry) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Watchlist (%d entries)\n\n", len(entries)))
	for i, entry := range entries {
		buf.WriteString(fmt.Sprintf("%d. %s - %.1f", i+1, entry.Title, entry.VoteAverage))
		if len(entry.Genres) > 0 {
			buf.WriteString(fmt.Sprintf(" [%s]", strings.Join(entry.Genres, ", ")))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// DownloadImage downloads an image from the given URL and returns the raw bytes
func DownloadImage(url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("empty URL provided")
	}

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download image: status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	return imageData, nil
}

// WriteCSVExport writes the watchlist as CSV to the given path.
// Defaults to watchlist.csv.
func WriteCSVExport(entries []models.WatchlistEntry, path string) (string, error) {
	if path == "" {
		path = "watchlist.csv"
	}

	data, err := ExportToCSV(entries)
	if err != nil {
		return "", fmt.Errorf("failed to generate CSV: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write CSV file: %w", err)
	}

	return path, nil
}

// MarkdownExportResult contains information about files created by WriteMarkdownExport
type MarkdownExportResult struct {
	Directory string
	Files     []string
	Posters   []string
}

// WriteMarkdownExport exports the watchlist to a dedicated directory:
// {dir}/README.md plus downloaded poster images when withPosters is set.
// Poster download failures are warnings, not errors.
func WriteMarkdownExport(username string, entries []models.WatchlistEntry, outputDir string, withPosters bool) (*MarkdownExportResult, error) {
	if outputDir == "" {
		outputDir = "watchlist"
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	result := &MarkdownExportResult{
		Directory: outputDir,
		Files:     []string{},
	}

	if withPosters {
		for _, entry := range entries {
			if entry.Poster == "" {
				continue
			}
			imageData, err := DownloadImage(entry.Poster)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to download poster for %s: %v\n", entry.Title, err)
				continue
			}
			posterPath := filepath.Join(outputDir, fmt.Sprintf("%d.jpg", entry.MovieID))
			if err := os.WriteFile(posterPath, imageData, 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to save poster for %s: %v\n", entry.Title, err)
				continue
			}
			result.Posters = append(result.Posters, posterPath)
		}
	}

	mdData, err := ExportToMarkdown(username, entries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate Markdown: %w", err)
	}

	mdFile := filepath.Join(outputDir, "README.md")
	if err := os.WriteFile(mdFile, mdData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write Markdown file: %w", err)
	}

	result.Files = append(result.Files, mdFile)
	return result, nil
}

// WriteTextExport writes the watchlist as plain text to the given path.
// Defaults to watchlist.txt.
func WriteTextExport(entries []models.WatchlistEntry, path string) (string, error) {
	if path == "" {
		path = "watchlist.txt"
	}

	textData, err := ExportToText(entries)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if err := os.WriteFile(path, textData, 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}

	return path, nil
}

// ToJSON generates a JSON representation of the watchlist.
func ToJSON(entries []models.WatchlistEntry, pretty bool) ([]byte, error) {
	return shared.MarshalJSON(entries, pretty)
}
