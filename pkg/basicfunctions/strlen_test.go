package basicfunctions_test

import (
	"errors"
	"testing"

	"github.com/paulscallanjr/closure-templates/pkg/basicfunctions"
	"github.com/paulscallanjr/closure-templates/pkg/data"
	"github.com/paulscallanjr/closure-templates/pkg/jssrc"
	"github.com/paulscallanjr/closure-templates/pkg/shared"
	"github.com/paulscallanjr/closure-templates/pkg/types"
)

func TestStrLenCompute(t *testing.T) {
	tests := []struct {
		name string
		arg  types.Value
		want int64
	}{
		{"plain string", data.NewString("hello"), 5},
		{"empty string", data.NewString(""), 0},
		{"sanitized content", data.NewSanitizedContent("<b>x</b>", data.ContentKindHTML), 8},
		{"non-bmp counts code units", data.NewString("a\U0001F600"), 3},
	}

	fn := basicfunctions.StrLenFunction{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fn.Compute(shared.Context{}, []types.Value{tt.arg})
			if err != nil {
				t.Fatal(err)
			}
			n, ok := got.(data.IntegerData)
			if !ok {
				t.Fatalf("result type = %T, want IntegerData", got)
			}
			if n.Value() != tt.want {
				t.Errorf("strLen = %d, want %d", n.Value(), tt.want)
			}
		})
	}
}

func TestStrLenTypeError(t *testing.T) {
	fn := basicfunctions.StrLenFunction{}
	tests := []struct {
		name string
		arg  types.Value
	}{
		{"integer", data.NewInteger(42)},
		{"list", data.NewList(data.NewString("x"))},
		{"boolean", data.NewBoolean(true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fn.Compute(shared.Context{}, []types.Value{tt.arg})
			var typeErr *types.TypeError
			if !errors.As(err, &typeErr) {
				t.Fatalf("got %v, want TypeError", err)
			}
			if typeErr.Value != tt.arg.String() {
				t.Errorf("TypeError names %q, want %q", typeErr.Value, tt.arg.String())
			}
		})
	}
}

func TestStrLenArityError(t *testing.T) {
	fn := basicfunctions.StrLenFunction{}
	for _, n := range []int{0, 2} {
		args := make([]types.Value, n)
		for i := range args {
			args[i] = data.NewString("x")
		}
		_, err := shared.CallFunction(shared.Context{}, fn, args)
		var arityErr *types.ArityError
		if !errors.As(err, &arityErr) {
			t.Errorf("size %d: got %v, want ArityError", n, err)
		}
	}
}

func TestStrLenComputeForJsSrc(t *testing.T) {
	fn := basicfunctions.StrLenFunction{}
	got, err := fn.ComputeForJsSrc([]jssrc.Expr{jssrc.New("opt_data.s", jssrc.MaxPrecedence)})
	if err != nil {
		t.Fatal(err)
	}
	want := "(String(opt_data.s)).length"
	if got.Text() != want {
		t.Errorf("emitted %q, want %q", got.Text(), want)
	}
	if got.Precedence() != jssrc.MaxPrecedence {
		t.Errorf("precedence = %d, want max (callers must not need parens)", got.Precedence())
	}
}

func TestStrLenMetadata(t *testing.T) {
	fn := basicfunctions.StrLenFunction{}
	if fn.Name() != "strLen" {
		t.Errorf("Name() = %q", fn.Name())
	}
	if !fn.Pure() {
		t.Errorf("Pure() = false")
	}
	sizes := fn.ValidArgsSizes()
	if len(sizes) != 1 || sizes[0] != 1 {
		t.Errorf("ValidArgsSizes() = %v, want [1]", sizes)
	}
}
