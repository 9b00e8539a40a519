package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/fastlog/internal/fasting"
	"github.com/go-pdf/fpdf"
)

// GeneratePDFReport writes the fasting log to dir and returns the file path.
func GeneratePDFReport(ctx context.Context, tracker *fasting.Tracker, dir string, now time.Time) (string, error) {
	sessions, err := tracker.Sessions(ctx)
	if err != nil {
		return "", fmt.Errorf("load sessions: %w", err)
	}
	total, err := tracker.TotalFastingDuration(ctx)
	if err != nil {
		return "", fmt.Errorf("total duration: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Fasting Report", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Fasting Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, "Generated: "+fasting.FormatTimestamp(now))
	pdf.Ln(8)
	if start, ok := tracker.OpenStart(); ok {
		pdf.Cell(0, 6, "Fasting in progress since: "+fasting.FormatTimestamp(start))
		pdf.Ln(8)
	}

	if len(sessions) == 0 {
		pdf.SetFont("Arial", "I", 11)
		pdf.Cell(0, 8, "No fasting logged yet.")
		pdf.Ln(10)
	} else {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(60, 8, "Start", "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, "End", "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, "Duration", "1", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		for i := len(sessions) - 1; i >= 0; i-- {
			s := sessions[i]
			end, duration := "In Progress", "(in progress)"
			if !s.IsOpen() {
				end = fasting.FormatTimestamp(*s.End)
				duration = fasting.FormatElapsed(s.Duration())
			}
			pdf.CellFormat(60, 7, fasting.FormatTimestamp(s.Start), "1", 0, "L", false, 0, "")
			pdf.CellFormat(60, 7, end, "1", 0, "L", false, 0, "")
			pdf.CellFormat(60, 7, duration, "1", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Total fasting time: "+fasting.FormatElapsed(total))
	pdf.Ln(10)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}
	filename := filepath.Join(dir, fmt.Sprintf("fasting_report_%s.pdf", now.Format("20060102_150405")))
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", err
	}
	return filename, nil
}
