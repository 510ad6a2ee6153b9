// Package extraction implements the document collaborators used by resume
// analysis: downloading a PDF, pulling its text and asking a generative model
// for a structured candidate.
package extraction

import (
	"github.com/allisson/resumevault/internal/errors"
)

// Extraction error definitions.
var (
	// ErrNotPDF indicates the downloaded document is not served as application/pdf.
	ErrNotPDF = errors.Wrap(errors.ErrInvalidInput, "document is not a PDF")

	// ErrDocumentTooLarge indicates the document exceeds the configured size limit.
	ErrDocumentTooLarge = errors.Wrap(errors.ErrInvalidInput, "document exceeds size limit")

	// ErrDocumentUnreachable indicates the document could not be downloaded.
	ErrDocumentUnreachable = errors.Wrap(errors.ErrInvalidInput, "document could not be downloaded")

	// ErrUnreadablePDF indicates the document could not be parsed as a PDF.
	ErrUnreadablePDF = errors.Wrap(errors.ErrInvalidInput, "document could not be parsed as a PDF")

	// ErrNoText indicates the PDF parsed but contained no extractable text.
	ErrNoText = errors.Wrap(errors.ErrInvalidInput, "no text could be extracted from the document")

	// ErrMalformedProfile indicates the model response was not the expected JSON object.
	ErrMalformedProfile = errors.Wrap(errors.ErrInvalidInput, "model returned a malformed profile")

	// ErrExtractorUnavailable indicates the model call failed or the breaker is open.
	ErrExtractorUnavailable = errors.Wrap(errors.ErrUnavailable, "profile extractor unavailable")
)
