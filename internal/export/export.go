package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/glimpse/glimpse/internal/project"
)

// Format names accepted by Render.
const (
	FormatText = "txt"
	FormatXML  = "xml"
)

// Options describes one export run.
type Options struct {
	Root        string
	ProjectName string
	// Files are the paths to export, relative to Root, in export order.
	Files       []string
	IncludeTree bool
	Settings    project.Settings

	// Timestamp and RunID are filled in when zero. Tests pin them.
	Timestamp time.Time
	RunID     string
}

func (o *Options) timestamp() string {
	t := o.Timestamp
	if t.IsZero() {
		t = time.Now()
	}
	return t.Format("2006-01-02 15:04")
}

// Render produces the export document in the requested format.
func Render(format string, o Options) (string, error) {
	switch format {
	case FormatXML:
		return XML(o), nil
	case FormatText, "":
		return Text(o), nil
	default:
		return "", fmt.Errorf("unknown export format %q", format)
	}
}

// Text renders the export as plain text with markdown style fences.
func Text(o Options) string {
	banner := strings.Repeat("=", 70)
	var b strings.Builder

	b.WriteString(banner + "\n")
	fmt.Fprintf(&b, "%s CODE EXPORT - %s\n", strings.ToUpper(o.ProjectName), o.timestamp())
	b.WriteString(banner + "\n")

	if o.IncludeTree {
		b.WriteString("\n## PROJECT STRUCTURE\n\n")
		b.WriteString("```\n")
		fmt.Fprintf(&b, "%s/\n", rootLabel(o.Root))
		if tree := project.Tree(o.Root, o.Settings); tree != "" {
			b.WriteString(tree + "\n")
		}
		b.WriteString("```\n")
	}

	b.WriteString("\n## FILE CONTENTS\n\n")
	for _, rel := range o.Files {
		fmt.Fprintf(&b, "### %s\n", rel)
		content, err := readRel(o.Root, rel)
		if err != nil {
			b.WriteString("```\n")
			fmt.Fprintf(&b, "# FILE NOT FOUND: %s\n", rel)
			b.WriteString("```\n\n")
			continue
		}
		fmt.Fprintf(&b, "```%s\n", Language(rel))
		b.WriteString(content)
		if !strings.HasSuffix(content, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("```\n\n")
	}

	b.WriteString(banner + "\n")
	b.WriteString("END OF EXPORT\n")
	b.WriteString(banner + "\n")
	return b.String()
}

// Language resolves the fence / markup language tag for a file name using
// chroma's lexer registry.
func Language(path string) string {
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		if ext := filepath.Ext(path); ext != "" {
			lexer = lexers.Match("file" + ext)
		}
	}
	if lexer == nil {
		return ""
	}
	cfg := lexer.Config()
	if len(cfg.Aliases) > 0 {
		return cfg.Aliases[0]
	}
	return strings.ToLower(cfg.Name)
}

func readRel(root, rel string) (string, error) {
	p := rel
	if !filepath.IsAbs(p) {
		p = filepath.Join(root, filepath.FromSlash(rel))
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func projectTree(o Options) string {
	return project.Tree(o.Root, o.Settings)
}

func fileExt(rel string) string {
	if ext := filepath.Ext(rel); ext != "" {
		return ext
	}
	return "(none)"
}

func rootLabel(root string) string {
	abs, err := filepath.Abs(root)
	if err != nil {
		return filepath.Base(root)
	}
	return filepath.Base(abs)
}
