package parser

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/charmap"
)

// EmailNotFound is the sentinel returned when no address is present in the
// extracted text.
const EmailNotFound = "N/A"

var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// Status classifies how far extraction got for a file.
type Status string

const (
	// StatusParsed means the full text was extracted.
	StatusParsed Status = "parsed"
	// StatusPartial means some content was lost (for example unreadable
	// PDF pages) but usable text remains.
	StatusPartial Status = "partial"
	// StatusFailed means no text could be extracted.
	StatusFailed Status = "failed"
)

// Result is the outcome of extracting one resume file. Callers decide
// policy from Status instead of this package swallowing failures.
type Result struct {
	Text   string
	Email  string
	Status Status
	Err    error
}

// Extract reads a resume file and returns its text plus the first email
// address found in it. The file format is chosen by extension: .txt, .pdf
// and .docx are supported. Extraction never panics and never returns an
// error to the caller; failures are reported through Result.Status.
func Extract(path string) Result {
	if _, err := os.Stat(path); err != nil {
		return failed(fmt.Errorf("file not accessible: %w", err))
	}

	var (
		text    string
		partial bool
		err     error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, partial, err = extractPDF(path)
	case ".docx":
		text, err = extractDocx(path)
	case ".txt":
		text, err = extractPlainText(path)
	default:
		err = fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}

	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("resume extraction failed")
		return failed(err)
	}

	status := StatusParsed
	if partial {
		status = StatusPartial
	}

	return Result{
		Text:   text,
		Email:  ExtractEmail(text),
		Status: status,
	}
}

// ExtractEmail returns the first email address in text, or EmailNotFound.
func ExtractEmail(text string) string {
	if m := emailPattern.FindString(text); m != "" {
		return m
	}
	return EmailNotFound
}

func failed(err error) Result {
	return Result{Email: EmailNotFound, Status: StatusFailed, Err: err}
}

func extractPlainText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read text file: %w", err)
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	// Not valid UTF-8; decode as Latin-1 like the rest of the world does.
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode text file: %w", err)
	}
	return string(decoded), nil
}

// extractPDF concatenates page text in page order. Pages that cannot be
// read contribute an empty string; partial reports whether any were lost.
func extractPDF(path string) (text string, partial bool, err error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", false, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var builder strings.Builder
	totalPages := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPages; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			partial = true
			continue
		}

		pageText, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			log.Warn().Err(pageErr).Str("file", path).Int("page", pageIndex).Msg("failed to read PDF page")
			partial = true
			continue
		}
		builder.WriteString(pageText)
	}

	return builder.String(), partial, nil
}

// wordMLNamespace is the WordprocessingML main namespace used by the
// document part of a .docx archive.
const wordMLNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// extractDocx treats the file as a zip archive, parses word/document.xml
// and walks paragraphs in document order, concatenating text runs and
// appending a newline after each paragraph.
func extractDocx(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX archive: %w", err)
	}
	defer zr.Close()

	var document *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			document = f
			break
		}
	}
	if document == nil {
		return "", fmt.Errorf("DOCX %s has no word/document.xml", path)
	}

	rc, err := document.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open document part: %w", err)
	}
	defer rc.Close()

	return parseDocumentXML(rc)
}

func parseDocumentXML(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var builder strings.Builder
	inTextRun := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse document XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space == wordMLNamespace && t.Name.Local == "t" {
				inTextRun = true
			}
		case xml.EndElement:
			if t.Name.Space != wordMLNamespace {
				continue
			}
			switch t.Name.Local {
			case "t":
				inTextRun = false
			case "p":
				builder.WriteString("\n")
			}
		case xml.CharData:
			if inTextRun {
				builder.Write(t)
			}
		}
	}

	return builder.String(), nil
}
