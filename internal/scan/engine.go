package scan

import (
	"bytes"
	"sync"
	"unicode/utf8"

	"github.com/glimpse/glimpse/internal/types"
)

// Input is one candidate file handed to the engine by the surrounding
// tool. Content may be nil when Readable is false; the engine never
// touches the filesystem itself.
type Input struct {
	Path     string
	Content  []byte
	Readable bool
}

type fileResult struct {
	findings []types.Finding
	skipped  *SkippedFile
	scanned  bool
}

// Run scans the inputs in order and returns the aggregated Report.
// Identical inputs and options always yield an identical Report,
// regardless of worker count. The only error condition is invalid
// options; per-file decode problems degrade to zero content findings.
func Run(inputs []Input, opts Options) (Report, error) {
	if err := opts.normalize(); err != nil {
		return Report{}, err
	}
	if opts.Disabled {
		return Report{}, nil
	}

	scanner := NewScanner(NewAnalyzer(opts.Thresholds))
	results := make([]fileResult, len(inputs))

	if opts.Workers > 1 && len(inputs) > 1 {
		var wg sync.WaitGroup
		idx := make(chan int)
		for w := 0; w < opts.Workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range idx {
					results[i] = scanOne(inputs[i], scanner, opts)
				}
			}()
		}
		for i := range inputs {
			idx <- i
		}
		close(idx)
		wg.Wait()
	} else {
		for i := range inputs {
			results[i] = scanOne(inputs[i], scanner, opts)
		}
	}

	var report Report
	perFile := make([][]types.Finding, 0, len(results))
	for _, r := range results {
		perFile = append(perFile, r.findings)
		if r.scanned {
			report.FilesScanned++
		}
		if r.skipped != nil {
			report.Skipped = append(report.Skipped, *r.skipped)
		}
	}
	report.Findings = aggregate(perFile)
	report.FilesWithFindings = countDistinctPaths(report.Findings)
	return report, nil
}

// scanOne applies both detection channels to a single input. The filename
// heuristic always runs; content scanning requires a readable, text,
// within-bounds file.
func scanOne(in Input, scanner *Scanner, opts Options) fileResult {
	var res fileResult
	if f, ok := CheckFilename(in.Path); ok {
		res.findings = append(res.findings, f)
	}
	if !in.Readable {
		return res
	}
	if opts.MaxFileBytes > 0 && int64(len(in.Content)) > opts.MaxFileBytes {
		res.skipped = &SkippedFile{Path: in.Path, Reason: SkipTooLarge}
		return res
	}
	if looksBinary(in.Content) {
		return res
	}
	if opts.MaxLines > 0 {
		if n := countLines(in.Content); n > opts.MaxLines {
			res.skipped = &SkippedFile{Path: in.Path, Reason: SkipTooManyLines}
			return res
		}
	}
	res.scanned = true
	res.findings = append(res.findings, scanner.ScanContent(in.Path, in.Content)...)
	return res
}

// looksBinary sniffs a prefix for NUL bytes and checks it decodes as
// UTF-8. Content failing either test contributes no line findings.
func looksBinary(b []byte) bool {
	const sniff = 800
	n := len(b)
	if n > sniff {
		n = sniff
	}
	if bytes.IndexByte(b[:n], 0) >= 0 {
		return true
	}
	// Trim a possibly split trailing rune before validating.
	head := b[:n]
	if n < len(b) {
		for len(head) > 0 && !utf8.RuneStart(head[len(head)-1]) {
			head = head[:len(head)-1]
		}
		if len(head) > 0 && head[len(head)-1] >= 0x80 {
			head = head[:len(head)-1]
		}
	}
	return !utf8.Valid(head)
}

func countLines(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	n := bytes.Count(b, []byte{'\n'})
	if b[len(b)-1] != '\n' {
		n++
	}
	return n
}
