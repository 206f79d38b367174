package i18ndirectives

import (
	"math"
	"strconv"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/paulscallanjr/closure-templates/pkg/data"
	"github.com/paulscallanjr/closure-templates/pkg/jssrc"
	"github.com/paulscallanjr/closure-templates/pkg/shared"
	"github.com/paulscallanjr/closure-templates/pkg/types"
)

// formatFamilies is the fixed set of accepted format-family literals, in
// documentation order. Any other literal is a configuration error in both
// backends.
var formatFamilies = []string{
	"decimal", "currency", "percent", "scientific", "compact_short", "compact_long",
}

// jsArgsToEnum maps quoted format-family literals, exactly as they appear in
// the emitted argument text, to the Closure Format enum.
var jsArgsToEnum = map[string]string{
	"'decimal'":       "goog.i18n.NumberFormat.Format.DECIMAL",
	"'currency'":      "goog.i18n.NumberFormat.Format.CURRENCY",
	"'percent'":       "goog.i18n.NumberFormat.Format.PERCENT",
	"'scientific'":    "goog.i18n.NumberFormat.Format.SCIENTIFIC",
	"'compact_short'": "goog.i18n.NumberFormat.Format.COMPACT_SHORT",
	"'compact_long'":  "goog.i18n.NumberFormat.Format.COMPACT_LONG",
}

var requiredJsLibs = []string{"goog.i18n.NumberFormat"}

// compactSignificantDigits caps the mantissa of compact output in both
// backends.
const compactSignificantDigits = 3

// FormatNumDirective formats an input number for the locale of the current
// render.
//
// It takes up to two optional arguments. The first selects the format
// family: 'decimal' (the default), 'currency', 'percent', 'scientific',
// 'compact_short' or 'compact_long'. The second is a numbering-system
// keyword forwarded verbatim to the locale resolver (for instance 'native'
// to show native digits); it has no counterpart in goog.i18n.NumberFormat
// and is deliberately ignored when emitting JavaScript.
//
// Usage:
//
//	{$value|formatNum}
//	{$value|formatNum:'decimal'}
//	{$value|formatNum:'decimal','native'}
type FormatNumDirective struct{}

var (
	_ shared.Directive         = FormatNumDirective{}
	_ shared.JsLibraryAssisted = FormatNumDirective{}
)

func (FormatNumDirective) Name() string { return "|formatNum" }

func (FormatNumDirective) ValidArgsSizes() []int { return []int{0, 1, 2} }

func (FormatNumDirective) Pure() bool { return true }

func (FormatNumDirective) CancelAutoescape() bool { return false }

// Apply formats the value under the locale obtained from ctx. The
// format-family literal is resolved before the value's type is inspected,
// and the locale accessor is consulted exactly once per call.
func (FormatNumDirective) Apply(ctx shared.Context, value types.Value, args []types.Value) (types.Value, error) {
	formatType := "decimal"
	if len(args) > 0 {
		ft, err := textArg("|formatNum", args[0])
		if err != nil {
			return nil, err
		}
		formatType = ft
	}
	format, err := familyFormatter(formatType)
	if err != nil {
		return nil, err
	}

	num, ok := value.(types.Numberer)
	if !ok {
		return nil, &types.TypeError{
			Name:     "|formatNum",
			Required: "a number",
			Value:    value.String(),
		}
	}

	tag := ParseLocale(ctx.LocaleString())
	if len(args) > 1 {
		keyword, err := textArg("|formatNum", args[1])
		if err != nil {
			return nil, err
		}
		// A numbering-system keyword like 'native' or 'arab'. The resolver
		// decides what it means; identifiers it rejects leave the locale
		// unchanged.
		if t, err := tag.SetTypeForKey("nu", keyword); err == nil {
			tag = t
		}
	}

	out := format(message.NewPrinter(tag), tag, num.CoerceToNumber())
	return data.NewString(out), nil
}

// familyFormatter resolves a format-family literal to its formatter. An
// unknown literal is a ConfigurationError, raised before any value-type
// validation.
func familyFormatter(formatType string) (func(p *message.Printer, tag language.Tag, v float64) string, error) {
	switch formatType {
	case "decimal":
		return func(p *message.Printer, _ language.Tag, v float64) string {
			return p.Sprint(number.Decimal(v))
		}, nil
	case "percent":
		return func(p *message.Printer, _ language.Tag, v float64) string {
			return p.Sprint(number.Percent(v))
		}, nil
	case "scientific":
		return func(p *message.Printer, _ language.Tag, v float64) string {
			return p.Sprint(number.Scientific(v))
		}, nil
	case "currency":
		return formatCurrency, nil
	case "compact_short":
		return func(p *message.Printer, _ language.Tag, v float64) string {
			return formatCompact(p, v, false)
		}, nil
	case "compact_long":
		return func(p *message.Printer, _ language.Tag, v float64) string {
			return formatCompact(p, v, true)
		}, nil
	default:
		return nil, &types.ConfigurationError{
			Name:    "|formatNum",
			Literal: formatType,
			Allowed: formatFamilies,
		}
	}
}

// ApplyForJsSrc resolves the format-family literal against the Closure
// Format enum and emits a goog.i18n.NumberFormat call. The numbering-system
// argument, when present, is dropped: goog.LOCALE governs the emitted
// formatter and offers no per-call override.
func (FormatNumDirective) ApplyForJsSrc(value jssrc.Expr, args []jssrc.Expr) (jssrc.Expr, error) {
	formatDecl := jsArgsToEnum["'decimal'"]
	formatLiteral := ""
	if len(args) > 0 {
		formatLiteral = args[0].Text()
		decl, ok := jsArgsToEnum[formatLiteral]
		if !ok {
			return jssrc.Expr{}, &types.ConfigurationError{
				Name:    "|formatNum",
				Literal: formatLiteral,
				Allowed: formatFamilies,
			}
		}
		formatDecl = decl
	}

	text := "(new goog.i18n.NumberFormat(" + formatDecl + "))"
	if formatLiteral == "'compact_short'" || formatLiteral == "'compact_long'" {
		text += ".setSignificantDigits(" + strconv.Itoa(compactSignificantDigits) + ")"
	}
	text += ".format(" + value.Text() + ")"

	return jssrc.New(text, jssrc.MaxPrecedence), nil
}

// RequiredJsLibNames declares the Closure libraries the emitted fragment
// depends on.
func (FormatNumDirective) RequiredJsLibNames() []string {
	libs := make([]string, len(requiredJsLibs))
	copy(libs, requiredJsLibs)
	return libs
}

// textArg extracts a text argument value or reports a TypeError.
func textArg(name string, arg types.Value) (string, error) {
	t, ok := arg.(types.Texter)
	if !ok {
		return "", &types.TypeError{Name: name, Required: "a string", Value: arg.String()}
	}
	return t.CoerceToText(), nil
}

func formatCurrency(p *message.Printer, tag language.Tag, v float64) string {
	unit, _ := currency.FromTag(tag)
	return p.Sprint(currency.Symbol(unit.Amount(v)))
}

// compactScales lists the CLDR-style powers of ten with their short and long
// English-family labels, largest first.
var compactScales = []struct {
	scale       float64
	shortSuffix string
	longSuffix  string
}{
	{1e12, "T", " trillion"},
	{1e9, "B", " billion"},
	{1e6, "M", " million"},
	{1e3, "K", " thousand"},
}

// formatCompact renders v in compact notation with the mantissa capped at
// compactSignificantDigits, matching the significant-digit cap the JS
// backend configures on its formatter.
func formatCompact(p *message.Printer, v float64, long bool) string {
	abs := math.Abs(v)
	for _, s := range compactScales {
		if abs < s.scale {
			continue
		}
		mantissa := v / s.scale
		out := p.Sprint(number.Decimal(mantissa, number.Precision(compactSignificantDigits)))
		if long {
			return out + s.longSuffix
		}
		return out + s.shortSuffix
	}
	return p.Sprint(number.Decimal(v, number.Precision(compactSignificantDigits)))
}
