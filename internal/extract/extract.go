package extract

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gomutex/godocx/packager"
	"github.com/gomutex/godocx/wml/ctypes"
	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedFormat is returned for file extensions the extractor cannot handle.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// FromFile extracts plain text from an uploaded file, dispatching on the
// filename extension. Supported: .txt, .pdf, .docx.
func FromFile(name string, content []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		return string(content), nil
	case ".pdf":
		return fromPDF(content)
	case ".docx":
		return fromDOCX(content)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(name))
	}
}

// fromPDF concatenates per-page text, skipping pages with no extractable text.
func fromPDF(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var pages []string
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() || page.V.Key("Contents").Kind() == pdf.Null {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil || strings.TrimSpace(text) == "" {
			// Pages that fail to extract are skipped, not fatal.
			continue
		}
		pages = append(pages, text)
	}
	return strings.Join(pages, "\n"), nil
}

// fromDOCX unpacks the OOXML package and joins the body's paragraph texts
// with newlines. Non-paragraph children (tables, section breaks) are skipped.
func fromDOCX(content []byte) (string, error) {
	doc, err := packager.Unpack(&content)
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	if doc.Document == nil || doc.Document.Body == nil {
		return "", errors.New("docx has no document body")
	}

	var paragraphs []string
	for _, child := range doc.Document.Body.Children {
		if child.Para == nil {
			continue
		}
		paragraphs = append(paragraphs, paragraphText(child.Para.GetCT()))
	}
	return strings.Join(paragraphs, "\n"), nil
}

// paragraphText concatenates the text runs of one paragraph.
func paragraphText(p *ctypes.Paragraph) string {
	var b strings.Builder
	for _, child := range p.Children {
		if child.Run == nil {
			continue
		}
		for _, rc := range child.Run.Children {
			if rc.Text != nil {
				b.WriteString(rc.Text.Text)
			}
		}
	}
	return b.String()
}
