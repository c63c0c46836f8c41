package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/glimpse/glimpse/internal/scan"
	"github.com/glimpse/glimpse/internal/types"
)

func sampleReport() scan.Report {
	return scan.Report{
		Findings: []types.Finding{
			{Path: "a/config.yml", Line: 3, Category: "AWS Access Key", Severity: types.SevHigh},
			{Path: "a/config.yml", Line: 17, Category: "High-Entropy String", Severity: types.SevMed},
			{Path: "creds/.env", Line: 0, Category: "Sensitive Filename", Severity: types.SevMed},
		},
		FilesScanned:      5,
		FilesWithFindings: 2,
		Skipped:           []scan.SkippedFile{{Path: "vendor/big.js", Reason: scan.SkipTooLarge}},
	}
}

func TestWriteWarningLayout(t *testing.T) {
	var buf bytes.Buffer
	WriteWarning(&buf, sampleReport())
	out := buf.String()

	if !strings.HasPrefix(out, strings.Repeat("!", 60)+"\n") {
		t.Fatalf("missing banner:\n%s", out)
	}
	if !strings.Contains(out, "POTENTIAL SECRETS DETECTED") {
		t.Fatalf("missing title:\n%s", out)
	}
	if !strings.Contains(out, "Line    3: AWS Access Key") {
		t.Fatalf("line number not right-aligned:\n%s", out)
	}
	if !strings.Contains(out, "Found 3 potential secret(s) across 2 file(s).") {
		t.Fatalf("missing summary:\n%s", out)
	}
	if !strings.Contains(out, "vendor/big.js (exceeds max file size)") {
		t.Fatalf("skip not reported:\n%s", out)
	}
}

func TestWriteWarningDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	WriteWarning(&a, sampleReport())
	WriteWarning(&b, sampleReport())
	if a.String() != b.String() {
		t.Fatalf("warning output differs between identical reports")
	}
}

func TestWriteWarningFileGrouping(t *testing.T) {
	var buf bytes.Buffer
	WriteWarning(&buf, sampleReport())
	out := buf.String()
	if strings.Count(out, "a/config.yml:") != 1 {
		t.Fatalf("findings for one file not grouped:\n%s", out)
	}
}
