package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/glimpse/glimpse/internal/scan"
)

func scanReportEmpty() scan.Report {
	return scan.Report{FilesScanned: 4}
}

func TestPrintTableWithFindings(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, sampleReport(), PrintOptions{NoColor: true})
	out := buf.String()
	if !strings.Contains(out, "AWS Access Key") {
		t.Fatalf("expected category column; got:\n%s", out)
	}
	if !strings.Contains(out, "a/config.yml:3") {
		t.Fatalf("expected location column; got:\n%s", out)
	}
	if !strings.Contains(out, "Findings: 3 across 2 file(s), 5 file(s) scanned") {
		t.Fatalf("expected summary footer; got:\n%s", out)
	}
}

func TestPrintTableNoFindings(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, scanReportEmpty(), PrintOptions{NoColor: true})
	out := buf.String()
	if !strings.Contains(out, "No secrets found") {
		t.Fatalf("expected friendly empty message; got:\n%s", out)
	}
}
