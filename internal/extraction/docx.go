package extraction

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// extractDOCX reads the main document part out of the DOCX zip container and
// returns its text content with paragraph breaks preserved as newlines.
func extractDOCX(data []byte) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Kind: KindDOCX, Message: "not a valid docx container", Cause: err}
	}

	var docXML []byte
	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return "", &ExtractionError{Kind: KindDOCX, Message: "failed to open document part", Cause: err}
		}
		docXML, err = io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return "", &ExtractionError{Kind: KindDOCX, Message: "failed to read document part", Cause: err}
		}
		break
	}
	if docXML == nil {
		return "", &ExtractionError{Kind: KindDOCX, Message: "container has no word/document.xml"}
	}

	text, err := wordXMLText(docXML)
	if err != nil {
		return "", &ExtractionError{Kind: KindDOCX, Message: "failed to decode document XML", Cause: err}
	}
	if strings.TrimSpace(text) == "" {
		return "", &ExtractionError{Kind: KindDOCX, Message: "document contains no text"}
	}
	return collapseWhitespace(text), nil
}

// wordXMLText walks WordprocessingML and collects character data, emitting a
// newline at each paragraph (w:p) close so section headers stay on their own
// lines.
func wordXMLText(docXML []byte) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(docXML))
	var sb strings.Builder
	inText := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			case "tab":
				sb.WriteString(" ")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}
