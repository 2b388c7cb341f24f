package extraction

import "fmt"

// UnsupportedFormatError indicates the declared media kind is not one the
// extractor knows how to read. It is returned before any extraction work.
type UnsupportedFormatError struct {
	MediaType string
	Filename  string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("unsupported document format %q for file %s: upload a PDF or Word document", e.MediaType, e.Filename)
	}
	return fmt.Sprintf("unsupported document format %q: upload a PDF or Word document", e.MediaType)
}

// ExtractionError indicates the extraction heuristics found nothing usable in
// a document of a supported kind.
type ExtractionError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s extraction failed: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s extraction failed: %s", e.Kind, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
