package report

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/verte-zerg/passtui/internal/model"
)

// RenderHistory prints an aligned table of history entries in the order
// given.
func RenderHistory(w io.Writer, entries []model.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No history found.")
		return err
	}
	headers := []string{"Timestamp", "Password", "Strength"}
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{entry.Timestamp, entry.Password, string(entry.Strength)})
	}
	lines := formatTable(headers, rows, nil)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderSummary prints entry counts per strength label and the average
// password length.
func RenderSummary(w io.Writer, entries []model.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No history found.")
		return err
	}
	counts := map[model.Strength]int{}
	totalLen := 0
	for _, entry := range entries {
		counts[entry.Strength]++
		totalLen += utf8.RuneCountInString(entry.Password)
	}
	total := len(entries)

	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Passwords: %d\n", total); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg length: %.1f\n", float64(totalLen)/float64(total)); err != nil {
		return err
	}

	headers := []string{"Strength", "Count", "Share"}
	rows := make([][]string, 0, 3)
	for _, label := range []model.Strength{model.Weak, model.Medium, model.Strong} {
		count := counts[label]
		rows = append(rows, []string{
			string(label),
			fmt.Sprintf("%d", count),
			fmt.Sprintf("%.1f%%", float64(count)/float64(total)*100),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
