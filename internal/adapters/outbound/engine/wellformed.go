package engine

import (
	"encoding/xml"
	"errors"
	"io"

	"github.com/ccdkit/ccdlint/internal/domain"
)

// MarkupParser implements domain.DocumentParser with a full token scan.
// It answers only "is this well-formed"; schema checks come later and are
// never attempted on markup that fails here.
type MarkupParser struct{}

func NewMarkupParser() *MarkupParser {
	return &MarkupParser{}
}

func (p *MarkupParser) CheckWellFormed(r io.Reader) *domain.MarkupError {
	dec := xml.NewDecoder(r)
	sawElement := false
	for {
		tok, err := dec.Token()
		if err == nil {
			if _, ok := tok.(xml.StartElement); ok {
				sawElement = true
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			if !sawElement {
				return &domain.MarkupError{Message: "document is empty"}
			}
			return nil
		}

		me := &domain.MarkupError{Message: err.Error()}
		var syn *xml.SyntaxError
		if errors.As(err, &syn) {
			me.Line = syn.Line
		}
		return me
	}
}
