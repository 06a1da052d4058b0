package export

import (
	"bytes"
	"os"

	"github.com/rotisserie/eris"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

// WriteMarkdown writes markdown text to a file.
func WriteMarkdown(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return eris.Wrap(err, "export: write markdown")
	}
	return nil
}

// RenderHTML converts markdown to an HTML fragment. Tables are enabled
// because both reports rely on them.
func RenderHTML(text string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(text), &buf); err != nil {
		return "", eris.Wrap(err, "export: render html")
	}
	return buf.String(), nil
}

// WriteHTML renders markdown and writes the HTML next to the markdown
// output.
func WriteHTML(path, text string) error {
	html, err := RenderHTML(text)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return eris.Wrap(err, "export: write html")
	}
	return nil
}
