// Package stats contains history calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/katype/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Summary aggregates a set of runs.
type Summary struct {
	Runs           int
	AvgWPM         float64
	BestWPM        float64
	AvgAccuracy    float64
	AvgConsistency float64
	TotalSeconds   int
}

// Summarize averages scores across runs.
func Summarize(runs []model.Run) Summary {
	var s Summary
	if len(runs) == 0 {
		return s
	}
	for _, r := range runs {
		s.AvgWPM += r.WPM
		s.AvgAccuracy += r.Accuracy
		s.AvgConsistency += r.Consistency
		s.TotalSeconds += r.DurationS
		if r.WPM > s.BestWPM {
			s.BestWPM = r.WPM
		}
	}
	count := float64(len(runs))
	s.Runs = len(runs)
	s.AvgWPM /= count
	s.AvgAccuracy /= count
	s.AvgConsistency /= count
	return s
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		idx = max(0, min(idx, len(sparkChars)-1))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// Series extracts the WPM, accuracy and consistency series of runs,
// smoothed over window.
func Series(runs []model.Run, window int) (wpm, acc, consistency []float64) {
	wpm = make([]float64, len(runs))
	acc = make([]float64, len(runs))
	consistency = make([]float64, len(runs))
	for i, r := range runs {
		wpm[i] = r.WPM
		acc[i] = r.Accuracy
		consistency[i] = r.Consistency
	}
	return MovingAverage(wpm, window), MovingAverage(acc, window), MovingAverage(consistency, window)
}

// RenderSummary prints a summary block for runs.
func RenderSummary(w io.Writer, runs []model.Run) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No results found.")
		return err
	}
	s := Summarize(runs)
	lines := []string{
		"Summary",
		fmt.Sprintf("Tests: %d", s.Runs),
		fmt.Sprintf("Avg WPM: %.2f", s.AvgWPM),
		fmt.Sprintf("Best WPM: %.0f", s.BestWPM),
		fmt.Sprintf("Avg Accuracy: %.2f%%", s.AvgAccuracy),
		fmt.Sprintf("Avg Consistency: %.2f%%", s.AvgConsistency),
		fmt.Sprintf("Time typed: %ds", s.TotalSeconds),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderTrends prints sparklines for the smoothed score series.
func RenderTrends(w io.Writer, runs []model.Run, window int) error {
	if len(runs) == 0 {
		return nil
	}
	wpm, acc, cons := Series(runs, window)
	rows := [][]string{
		{"WPM", Sparkline(wpm)},
		{"Accuracy", Sparkline(acc)},
		{"Consistency", Sparkline(cons)},
	}
	if _, err := fmt.Fprintf(w, "Trends (window %d)\n", window); err != nil {
		return err
	}
	trends := textTable{columns: []column{{title: "Series"}, {title: "Trend"}}, rows: rows}
	if err := trends.writeTo(w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderHistory prints one aligned row per run.
func RenderHistory(w io.Writer, runs []model.Run) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No results found.")
		return err
	}
	if _, err := fmt.Fprintln(w, "History"); err != nil {
		return err
	}
	return historyTable(runs).writeTo(w)
}

// HistoryHeaders returns column titles for history rows.
func HistoryHeaders() []string {
	return []string{"Date", "Lang", "Words", "Time", "WPM", "Acc", "Cons"}
}

// HistoryRows formats runs as table cells, oldest first.
func HistoryRows(runs []model.Run) [][]string {
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.EndedAt.Local().Format("2006-01-02 15:04"),
			r.Lang,
			fmt.Sprintf("%d/%d", r.TypedWords, r.Words),
			fmt.Sprintf("%ds", r.DurationS),
			fmt.Sprintf("%.0f", r.WPM),
			fmt.Sprintf("%.0f%%", r.Accuracy),
			fmt.Sprintf("%.0f%%", r.Consistency),
		})
	}
	return rows
}
