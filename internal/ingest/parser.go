package ingest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

var (
	ErrTooLarge    = errors.New("input exceeds size limit")
	ErrInvalidUTF8 = errors.New("input is not valid UTF-8")
)

// Document is text extracted from one source, ready for analysis.
type Document struct {
	Name       string
	SourcePath string
	Text       string
}

// ParseFile extracts text from path. Plain text is returned verbatim so
// character and whitespace statistics stay exact; .docx and .pdf extraction
// is line-normalized.
func ParseFile(path string) (*Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var text string
	switch ext {
	case "", ".txt", ".text", ".md":
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		if !utf8.Valid(raw) {
			return nil, fmt.Errorf("%s: %w", path, ErrInvalidUTF8)
		}
		text = string(raw)
	case ".docx":
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		text, err = parseDOCX(raw)
		if err != nil {
			return nil, err
		}
		text = normalizeWhitespace(text)
	case ".pdf":
		var err error
		text, err = parsePDF(path)
		if err != nil {
			return nil, err
		}
		text = normalizeWhitespace(text)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", ext)
	}

	return &Document{
		Name:       strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		SourcePath: path,
		Text:       text,
	}, nil
}

// ReadText reads r verbatim. limit <= 0 disables the size check.
func ReadText(r io.Reader, limit int) (string, error) {
	if limit > 0 {
		r = io.LimitReader(r, int64(limit)+1)
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	if limit > 0 && len(raw) > limit {
		return "", ErrTooLarge
	}
	if !utf8.Valid(raw) {
		return "", ErrInvalidUTF8
	}
	return string(raw), nil
}

// parseDOCX streams word/document.xml and keeps paragraph, tab and line
// breaks as whitespace so they still separate tokens.
func parseDOCX(raw []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("open docx zip: %w", err)
	}
	idx := slices.IndexFunc(zr.File, func(f *zip.File) bool { return f.Name == "word/document.xml" })
	if idx < 0 {
		return "", fmt.Errorf("word/document.xml not found")
	}
	rc, err := zr.File[idx].Open()
	if err != nil {
		return "", fmt.Errorf("open document.xml: %w", err)
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var b strings.Builder
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decode document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "p":
				if b.Len() > 0 {
					b.WriteByte('\n')
				}
			case "tab":
				b.WriteByte('\t')
			case "br", "cr":
				b.WriteByte('\n')
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inText = false
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}

func parsePDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	failed := 0
	total := r.NumPage()
	for i := 1; i <= total; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			failed++
			continue
		}
		b.WriteString(content)
		b.WriteByte('\n')
	}
	if strings.TrimSpace(b.String()) == "" {
		if failed > 0 {
			return "", fmt.Errorf("no extractable text in pdf (%d of %d pages failed)", failed, total)
		}
		return "", fmt.Errorf("no extractable text in pdf")
	}
	return b.String(), nil
}

// normalizeWhitespace collapses spacing inside each line and drops blank
// lines, which extraction produces in bulk.
func normalizeWhitespace(text string) string {
	var out []string
	for line := range strings.Lines(text) {
		if fields := strings.Fields(line); len(fields) > 0 {
			out = append(out, strings.Join(fields, " "))
		}
	}
	return strings.Join(out, "\n")
}
