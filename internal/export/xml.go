package export

import (
	"fmt"
	"strings"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string { return xmlEscaper.Replace(s) }

// cdataWrap wraps content in a CDATA section. A literal "]]>" inside the
// content would close the section early, so it is split across sections:
// "code]]>more" becomes "<![CDATA[code]]]]><![CDATA[>more]]>".
func cdataWrap(content string) string {
	if strings.Contains(content, "]]>") {
		content = strings.ReplaceAll(content, "]]>", "]]]]><![CDATA[>")
	}
	return "<![CDATA[" + content + "]]>"
}

func fingerprint(b []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(b))
}

// XML renders the export as structured XML with CDATA-wrapped file contents,
// sized for machine consumption.
func XML(o Options) string {
	timestamp := o.timestamp()
	runID := o.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, `<codebase project="%s" exported="%s" total_files="%d">`+"\n",
		xmlEscape(o.ProjectName), timestamp, len(o.Files))

	b.WriteString("  <export_notes>\n")
	note := fmt.Sprintf("This is an export of the %s codebase. "+
		"Each <file> element contains the full contents of one source file "+
		"wrapped in CDATA. Use the 'path' attribute to identify files.", o.ProjectName)
	b.WriteString("    " + cdataWrap(note) + "\n")
	b.WriteString("  </export_notes>\n")

	if o.IncludeTree {
		treeText := rootLabel(o.Root) + "/\n" + projectTree(o)
		b.WriteString("\n  <project_structure>\n")
		b.WriteString("    " + cdataWrap(treeText) + "\n")
		b.WriteString("  </project_structure>\n")
	}

	b.WriteString("\n  <files>\n")
	for _, rel := range o.Files {
		content, err := readRel(o.Root, rel)
		if err != nil {
			fmt.Fprintf(&b, "    <file path=\"%s\" status=\"not_found\">\n", xmlEscape(rel))
			b.WriteString("      " + cdataWrap("FILE NOT FOUND: "+rel) + "\n")
			b.WriteString("    </file>\n")
			continue
		}
		lang := Language(rel)
		if lang == "" {
			lang = "unknown"
		}
		ext := fileExt(rel)
		fmt.Fprintf(&b, "    <file path=\"%s\" extension=\"%s\" language=\"%s\" size=\"%d\" fingerprint=\"%s\">\n",
			xmlEscape(rel), xmlEscape(ext), xmlEscape(lang), len(content), fingerprint([]byte(content)))
		b.WriteString("      " + cdataWrap(content) + "\n")
		b.WriteString("    </file>\n")
	}
	b.WriteString("  </files>\n")

	b.WriteString("\n  <export_metadata>\n")
	b.WriteString("    <tool>glimpse</tool>\n")
	b.WriteString("    <format_version>1.0</format_version>\n")
	fmt.Fprintf(&b, "    <run_id>%s</run_id>\n", runID)
	fmt.Fprintf(&b, "    <file_count>%d</file_count>\n", len(o.Files))
	fmt.Fprintf(&b, "    <timestamp>%s</timestamp>\n", timestamp)
	b.WriteString("  </export_metadata>\n")

	b.WriteString("\n</codebase>\n")
	return b.String()
}
