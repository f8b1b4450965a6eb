package mdpage

import (
	"errors"

	"github.com/alnah/go-mdpage/internal/partial"
	"github.com/alnah/go-mdpage/internal/pipeline"
)

// Sentinel errors for rendering operations.
var (
	ErrDocumentRead   = errors.New("failed to read document")
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrPageScriptRead = errors.New("failed to read page script")
	ErrTemplateRender = errors.New("page template rendering failed")

	// Partial errors.
	ErrPartialRender     = partial.ErrRender
	ErrUnresolvedPartial = partial.ErrUnresolvedPartial
	ErrComponentLoad     = errors.New("failed to load components")

	// Construction errors.
	ErrInvalidAssetPath  = errors.New("invalid asset path")
	ErrInvalidPageScript = errors.New("invalid page script")
)
