package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Stylesheet is the minimal shared stylesheet the HTML scaffold links.
const Stylesheet = `body { font-family: sans-serif; }
.wrapper { max-width: 72em; margin: 0 auto; }
table { border-collapse: collapse; margin: 1em 0; }
th, td { border: 1px solid #999; padding: 0.25em 0.6em; text-align: center; }
.details div { font-family: monospace; margin: 0.2em 0; }
`

const (
	htmlHeader = `<!DOCTYPE html>
<html>
<head>
<link rel="stylesheet" href="styles.css">
</head>
<body>
<div class="wrapper">
`
	htmlFooter = `</div>
</body>
</html>
`
)

// HTMLFiles emits a numbered sequence of HTML documents into one
// directory: prefix_001.html, prefix_002.html, ... — one per simulation
// step. Every file carries the shared document scaffold.
type HTMLFiles struct {
	dir    string
	prefix string
	seq    int
}

// NewHTMLFiles creates the output directory (if needed) and returns a
// sequence writer for it.
func NewHTMLFiles(dir, prefix string) (*HTMLFiles, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: output dir: %w", err)
	}
	return &HTMLFiles{dir: dir, prefix: prefix}, nil
}

// Create opens the next file in the sequence, wraps fn's output in the
// document scaffold, and closes the file.
func (h *HTMLFiles) Create(fn func(io.Writer) error) (err error) {
	h.seq++
	name := filepath.Join(h.dir, fmt.Sprintf("%s_%03d.html", h.prefix, h.seq))

	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("render: close %s: %w", name, cerr)
		}
	}()

	if _, err = io.WriteString(f, htmlHeader); err != nil {
		return fmt.Errorf("render: write %s: %w", name, err)
	}
	if err = fn(f); err != nil {
		return err
	}
	if _, err = io.WriteString(f, htmlFooter); err != nil {
		return fmt.Errorf("render: write %s: %w", name, err)
	}
	return nil
}

// Count returns how many files were emitted so far.
func (h *HTMLFiles) Count() int { return h.seq }

// WriteStylesheet drops the shared styles.css next to the HTML files.
func (h *HTMLFiles) WriteStylesheet() error {
	name := filepath.Join(h.dir, "styles.css")
	if err := os.WriteFile(name, []byte(Stylesheet), 0o644); err != nil {
		return fmt.Errorf("render: stylesheet: %w", err)
	}
	return nil
}
