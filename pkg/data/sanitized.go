package data

import "github.com/paulscallanjr/closure-templates/pkg/types"

// ContentKind identifies the context a piece of sanitized content is safe
// for. The set matches the contexts the escaping pipeline produces.
type ContentKind uint8

const (
	ContentKindHTML ContentKind = iota + 1
	ContentKindJS
	ContentKindJSStrChars
	ContentKindURI
	ContentKindAttributes
	ContentKindCSS
	ContentKindText
)

func (k ContentKind) String() string {
	switch k {
	case ContentKindHTML:
		return "HTML"
	case ContentKindJS:
		return "JS"
	case ContentKindJSStrChars:
		return "JS_STR_CHARS"
	case ContentKindURI:
		return "URI"
	case ContentKindAttributes:
		return "ATTRIBUTES"
	case ContentKindCSS:
		return "CSS"
	case ContentKindText:
		return "TEXT"
	default:
		return "UNKNOWN"
	}
}

// SanitizedContent is text that has already been escaped or filtered for a
// particular output context, so the autoescaper will not escape it again.
//
// In the type lattice all sanitized content reports the HTML kind; the finer
// ContentKind distinctions matter to the escaping pipeline, not to the
// lattice.
type SanitizedContent struct {
	content string
	kind    ContentKind
}

// NewSanitizedContent wraps already-sanitized text with its content kind.
func NewSanitizedContent(content string, kind ContentKind) SanitizedContent {
	return SanitizedContent{content: content, kind: kind}
}

func (d SanitizedContent) ValueKind() types.Kind { return types.KindHTML }
func (d SanitizedContent) String() string        { return d.content }

// ContentKind reports the context the content is safe for.
func (d SanitizedContent) ContentKind() ContentKind { return d.kind }

// CoerceToText satisfies the text-coercion capability: sanitized content
// coerces to its text form like a plain string.
func (d SanitizedContent) CoerceToText() string { return d.content }
