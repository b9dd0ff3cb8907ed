package cv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"
)

// ErrNotPDF is returned when the uploaded bytes carry no PDF header.
var ErrNotPDF = errors.New("not a PDF document")

var pdfMagic = []byte("%PDF-")

// readers accept a header anywhere in the first KiB
const pdfMagicWindow = 1024

// TextExtractor turns an uploaded document into plain text.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte) (string, error)
}

// Extractor names accepted by NewTextExtractor.
const (
	ExtractorAuto    = "auto"
	ExtractorDocconv = "docconv"
	ExtractorNative  = "native"
)

// NewTextExtractor builds the extractor configured by name.
func NewTextExtractor(name string) (TextExtractor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ExtractorAuto:
		return FallbackExtractor{DocconvExtractor{}, NativePDFExtractor{}}, nil
	case ExtractorDocconv:
		return DocconvExtractor{}, nil
	case ExtractorNative:
		return NativePDFExtractor{}, nil
	default:
		return nil, fmt.Errorf("unknown pdf extractor %q", name)
	}
}

// DocconvExtractor shells out through docconv (poppler's pdftotext).
type DocconvExtractor struct{}

func (DocconvExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	if err := checkPDF(ctx, data); err != nil {
		return "", err
	}
	text, _, err := docconv.ConvertPDF(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("docconv: failed to parse document: %w", err)
	}
	return text, nil
}

// NativePDFExtractor reads the PDF in-process, page by page.
type NativePDFExtractor struct{}

func (NativePDFExtractor) Extract(ctx context.Context, data []byte) (text string, err error) {
	if err := checkPDF(ctx, data); err != nil {
		return "", err
	}

	// the pdf package panics on some malformed cross-reference tables
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf: malformed document: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("pdf: failed to read document: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("pdf: page %d: %w", i, err)
		}
		sb.WriteString(pageText)
	}
	return sb.String(), nil
}

// FallbackExtractor tries each extractor in order and returns the first success.
type FallbackExtractor []TextExtractor

func (f FallbackExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	var errs []error
	for _, e := range f {
		text, err := e.Extract(ctx, data)
		if err == nil {
			return text, nil
		}
		if errors.Is(err, ErrNotPDF) || ctx.Err() != nil {
			return "", err
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return "", errors.New("no text extractor configured")
	}
	return "", errors.Join(errs...)
}

func checkPDF(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	head := data
	if len(head) > pdfMagicWindow {
		head = head[:pdfMagicWindow]
	}
	if !bytes.Contains(head, pdfMagic) {
		return ErrNotPDF
	}
	return nil
}
