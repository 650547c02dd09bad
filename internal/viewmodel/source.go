package viewmodel

import (
	"fmt"
	"net/url"
)

// DocumentsBasePath is the path prefix under which source PDFs are
// served. The target page travels as a URL fragment understood by the
// document viewer, not by the server. Overridden at startup from the
// DOCUMENTS_BASE_URL setting.
var DocumentsBasePath = "/documents"

// SourceRef is a rendered citation of a source document.
type SourceRef struct {
	Document string `json:"document" example:"Budget Book 2024-25.pdf"`
	Page     *int   `json:"page"`
	Link     string `json:"link" example:"/documents/Budget%20Book%202024-25.pdf#page=87"`
}

// NewSourceRef builds a citation with its deep link. A nil page links
// to the document itself.
func NewSourceRef(document string, page *int) SourceRef {
	return SourceRef{
		Document: document,
		Page:     page,
		Link:     DocumentLink(document, page),
	}
}

// DocumentLink resolves a document name and optional page to a viewer
// URL, escaping the filename segment and appending the #page=N
// fragment convention.
func DocumentLink(document string, page *int) string {
	link := DocumentsBasePath + "/" + url.PathEscape(document)
	if page != nil {
		link += fmt.Sprintf("#page=%d", *page)
	}
	return link
}
