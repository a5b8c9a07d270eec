package calculator

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expression string
		want       float64
	}{
		{"2+2", 4},
		{"2^3", 8},
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"10 / 4", 2.5},
		{"-3 + 5", 2},
		{"-2^2", -4},
		{"(-2)^2", 4},
		{"2^3^2", 512},
		{"2^-1", 0.5},
		{"1.5e2 + 1", 151},
		{"(4.5*2.1)^2.2", math.Pow(4.5*2.1, 2.2)},
		{"2*pi", 2 * math.Pi},
	}
	for _, tt := range tests {
		got, err := Evaluate(tt.expression, nil)
		if err != nil {
			t.Errorf("Evaluate(%q): %v", tt.expression, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Evaluate(%q) = %v, want %v", tt.expression, got, tt.want)
		}
	}
}

func TestEvaluateParams(t *testing.T) {
	got, err := Evaluate("x^2 + y", map[string]float64{"x": 3, "y": 1})
	if err != nil {
		t.Fatal(err)
	}
	if got != 10 {
		t.Errorf("got %v, want 10", got)
	}
}

func TestEvaluateErrors(t *testing.T) {
	malformed := []string{
		"",
		"2 +",
		"(2 + 3",
		"2 ** 3",
		"foo(2)",
		"2 & 3",
		"bogus + 1",
	}
	for _, expression := range malformed {
		if _, err := Evaluate(expression, nil); err == nil {
			t.Errorf("Evaluate(%q) expected error", expression)
		}
	}
	if _, err := Evaluate("1 / 0", nil); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("expected ErrDivisionByZero, got %v", err)
	}
	if _, err := Evaluate("1 / (2 - 2)", nil); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestTool(t *testing.T) {
	ctx := context.Background()
	tool := New()
	ret, err := tool.Run(ctx, NewInput("2^3", nil))
	if err != nil {
		t.Fatal(err)
	}
	if ret.Result != 8 {
		t.Errorf("expecting 8, but got %.2f", ret.Result)
	}
}

func TestToolRunAnonymous(t *testing.T) {
	ctx := context.Background()
	tool := New()
	for _, input := range []any{
		"2^3",
		`{"expression": "2^3"}`,
		NewInput("2^3", nil),
	} {
		out, err := tool.RunAnonymous(ctx, input)
		if err != nil {
			t.Fatalf("RunAnonymous(%v): %v", input, err)
		}
		ret, ok := out.(*Output)
		if !ok {
			t.Fatalf("RunAnonymous(%v) returned %T", input, out)
		}
		if ret.Result != 8 {
			t.Errorf("RunAnonymous(%v) = %.2f, want 8", input, ret.Result)
		}
	}
}

func ExampleTool() {
	ctx := context.Background()
	tool := New()
	ret, _ := tool.Run(ctx, NewInput("2+2", nil))
	fmt.Println(ret.Result)
	// Output:
	// 4
}
