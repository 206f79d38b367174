package i18ndirectives_test

import (
	"errors"
	"testing"

	"github.com/paulscallanjr/closure-templates/pkg/data"
	"github.com/paulscallanjr/closure-templates/pkg/i18ndirectives"
	"github.com/paulscallanjr/closure-templates/pkg/jssrc"
	"github.com/paulscallanjr/closure-templates/pkg/shared"
	"github.com/paulscallanjr/closure-templates/pkg/types"
)

func enContext() shared.Context {
	return shared.Context{Locale: func() string { return "en" }}
}

func strArgs(ss ...string) []types.Value {
	args := make([]types.Value, len(ss))
	for i, s := range ss {
		args[i] = data.NewString(s)
	}
	return args
}

func TestFormatNumApply(t *testing.T) {
	tests := []struct {
		name  string
		value types.Value
		args  []types.Value
		want  string
	}{
		{"default is decimal", data.NewFloat(1234567), nil, "1,234,567"},
		{"explicit decimal", data.NewFloat(0.25), strArgs("decimal"), "0.25"},
		{"percent", data.NewFloat(0.25), strArgs("percent"), "25%"},
		{"compact short caps mantissa", data.NewInteger(1234567), strArgs("compact_short"), "1.23M"},
		{"compact long caps mantissa", data.NewInteger(1234567), strArgs("compact_long"), "1.23 million"},
		{"compact short thousand", data.NewInteger(1000), strArgs("compact_short"), "1K"},
		{"compact below thousand", data.NewInteger(999), strArgs("compact_short"), "999"},
		{"numbering keyword accepted", data.NewFloat(0.25), strArgs("decimal", "latn"), "0.25"},
	}

	dir := i18ndirectives.FormatNumDirective{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dir.Apply(enContext(), tt.value, tt.args)
			if err != nil {
				t.Fatal(err)
			}
			if got.String() != tt.want {
				t.Errorf("formatted %q, want %q", got.String(), tt.want)
			}
		})
	}
}

// The remaining families depend on locale data tables; check they format
// without error rather than pinning exact output.
func TestFormatNumApplyOtherFamilies(t *testing.T) {
	dir := i18ndirectives.FormatNumDirective{}
	ctx := shared.Context{Locale: func() string { return "en-US" }}
	for _, family := range []string{"currency", "scientific"} {
		t.Run(family, func(t *testing.T) {
			got, err := dir.Apply(ctx, data.NewFloat(12.5), strArgs(family))
			if err != nil {
				t.Fatal(err)
			}
			if got.String() == "" {
				t.Errorf("empty output for %s", family)
			}
		})
	}
}

func TestFormatNumConfigurationError(t *testing.T) {
	dir := i18ndirectives.FormatNumDirective{}

	_, err := dir.Apply(enContext(), data.NewFloat(1), strArgs("bogus"))
	var confErr *types.ConfigurationError
	if !errors.As(err, &confErr) {
		t.Fatalf("interpret: got %v, want ConfigurationError", err)
	}
	if confErr.Literal != "bogus" {
		t.Errorf("interpret: error names %q", confErr.Literal)
	}

	_, err = dir.ApplyForJsSrc(
		jssrc.New("opt_data.v", jssrc.MaxPrecedence),
		[]jssrc.Expr{jssrc.New("'bogus'", jssrc.MaxPrecedence)},
	)
	if !errors.As(err, &confErr) {
		t.Fatalf("emit: got %v, want ConfigurationError", err)
	}
}

func TestFormatNumArityPrecedesConfiguration(t *testing.T) {
	dir := i18ndirectives.FormatNumDirective{}
	// Three args are out of range; the bogus literal must never be reached.
	_, err := shared.ApplyDirective(enContext(), dir, data.NewFloat(1), strArgs("bogus", "x", "y"))
	var arityErr *types.ArityError
	if !errors.As(err, &arityErr) {
		t.Fatalf("got %v, want ArityError", err)
	}
}

func TestFormatNumConfigurationPrecedesType(t *testing.T) {
	dir := i18ndirectives.FormatNumDirective{}
	// The value is not a number and the literal names no family; the literal
	// is resolved first, so the configuration error wins.
	_, err := dir.Apply(enContext(), data.NewString("not a number"), strArgs("bogus"))
	var confErr *types.ConfigurationError
	if !errors.As(err, &confErr) {
		t.Fatalf("got %v, want ConfigurationError", err)
	}
	if confErr.Literal != "bogus" {
		t.Errorf("error names %q", confErr.Literal)
	}
}

func TestFormatNumTypeError(t *testing.T) {
	dir := i18ndirectives.FormatNumDirective{}
	_, err := dir.Apply(enContext(), data.NewString("not a number"), nil)
	var typeErr *types.TypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("got %v, want TypeError", err)
	}
}

func TestFormatNumLocaleAccessorCalledOnce(t *testing.T) {
	calls := 0
	ctx := shared.Context{Locale: func() string { calls++; return "en" }}
	dir := i18ndirectives.FormatNumDirective{}
	if _, err := dir.Apply(ctx, data.NewFloat(1), nil); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("locale accessor invoked %d times, want 1", calls)
	}
}

func TestFormatNumApplyForJsSrc(t *testing.T) {
	tests := []struct {
		name string
		args []jssrc.Expr
		want string
	}{
		{
			"no args defaults to decimal",
			nil,
			"(new goog.i18n.NumberFormat(goog.i18n.NumberFormat.Format.DECIMAL)).format(opt_data.v)",
		},
		{
			"percent",
			[]jssrc.Expr{jssrc.New("'percent'", jssrc.MaxPrecedence)},
			"(new goog.i18n.NumberFormat(goog.i18n.NumberFormat.Format.PERCENT)).format(opt_data.v)",
		},
		{
			"compact short sets significant digits",
			[]jssrc.Expr{jssrc.New("'compact_short'", jssrc.MaxPrecedence)},
			"(new goog.i18n.NumberFormat(goog.i18n.NumberFormat.Format.COMPACT_SHORT)).setSignificantDigits(3).format(opt_data.v)",
		},
		{
			"numbering keyword is ignored",
			[]jssrc.Expr{jssrc.New("'decimal'", jssrc.MaxPrecedence), jssrc.New("'native'", jssrc.MaxPrecedence)},
			"(new goog.i18n.NumberFormat(goog.i18n.NumberFormat.Format.DECIMAL)).format(opt_data.v)",
		},
	}

	dir := i18ndirectives.FormatNumDirective{}
	value := jssrc.New("opt_data.v", jssrc.MaxPrecedence)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dir.ApplyForJsSrc(value, tt.args)
			if err != nil {
				t.Fatal(err)
			}
			if got.Text() != tt.want {
				t.Errorf("emitted %q\nwant    %q", got.Text(), tt.want)
			}
		})
	}
}

func TestFormatNumMetadata(t *testing.T) {
	dir := i18ndirectives.FormatNumDirective{}
	if dir.Name() != "|formatNum" {
		t.Errorf("Name() = %q", dir.Name())
	}
	if dir.CancelAutoescape() {
		t.Errorf("CancelAutoescape() = true")
	}
	sizes := dir.ValidArgsSizes()
	if len(sizes) != 3 || sizes[0] != 0 || sizes[1] != 1 || sizes[2] != 2 {
		t.Errorf("ValidArgsSizes() = %v, want [0 1 2]", sizes)
	}
	libs := dir.RequiredJsLibNames()
	if len(libs) != 1 || libs[0] != "goog.i18n.NumberFormat" {
		t.Errorf("RequiredJsLibNames() = %v", libs)
	}
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"en", "en"},
		{"en-US", "en-US"},
		{"en_US", "en-US"},
		{"", "und"},
		{"!!!", "und"},
	}
	for _, tt := range tests {
		if got := i18ndirectives.ParseLocale(tt.in).String(); got != tt.want {
			t.Errorf("ParseLocale(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
