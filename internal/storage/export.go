package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ExportCSV writes records to a CSV file with a header row.
func ExportCSV(path string, records []Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"domain", "word", "tld", "available", "method",
		"total_score", "pronounceability", "spellability", "length",
		"memorability", "brandability", "euphony", "meaning",
		"last_checked", "check_count",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.Domain, r.Word, r.TLD, availableLabel(r.Available), r.Method,
			"", "", "", "", "", "", "", "",
			r.LastChecked.Format("2006-01-02 15:04:05"),
			strconv.Itoa(r.CheckCount),
		}
		if r.Score != nil {
			row[5] = strconv.FormatFloat(r.Score.Total, 'f', 1, 64)
			row[6] = strconv.Itoa(r.Score.Pronounceability)
			row[7] = strconv.Itoa(r.Score.Spellability)
			row[8] = strconv.Itoa(r.Score.Length)
			row[9] = strconv.Itoa(r.Score.Memorability)
			row[10] = strconv.Itoa(r.Score.Brandability)
			row[11] = strconv.Itoa(r.Score.Euphony)
			row[12] = strconv.Itoa(r.Score.Meaning)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush export: %w", err)
	}
	return nil
}

// ExportMarkdown writes records as a Markdown table, best score first.
func ExportMarkdown(path string, records []Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	var b strings.Builder
	b.WriteString("# Domain Results\n\n")
	b.WriteString("| Domain | Available | Score | Method | Last Checked |\n")
	b.WriteString("|--------|-----------|-------|--------|---------------|\n")

	for _, r := range records {
		scoreText := "-"
		if r.Score != nil {
			scoreText = strconv.FormatFloat(r.Score.Total, 'f', 1, 64)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			r.Domain, availableLabel(r.Available), scoreText, r.Method,
			r.LastChecked.Format("2006-01-02"))
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

func availableLabel(p *bool) string {
	switch {
	case p == nil:
		return "unknown"
	case *p:
		return "yes"
	default:
		return "no"
	}
}
