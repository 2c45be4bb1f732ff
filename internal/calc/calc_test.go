package calc

import "testing"

func TestAdd(t *testing.T) {
	cases := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{"positive numbers", 2, 3, 5},
		{"zeros", 0, 0, 0},
		{"negative and positive", -1, 1, 0},
		{"fractions", 0.5, 0.25, 0.75},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Add(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("Add(%v, %v) = %v, want %v", tc.a, tc.b, result, tc.expected)
			}
		})
	}
}

func TestSubtract(t *testing.T) {
	cases := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{"positive result", 5, 3, 2},
		{"zeros", 0, 0, 0},
		{"negative result", 1, 5, -4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Subtract(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("Subtract(%v, %v) = %v, want %v", tc.a, tc.b, result, tc.expected)
			}
		})
	}
}

func TestMultiply(t *testing.T) {
	cases := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{"positive numbers", 2, 3, 6},
		{"multiply by zero", 0, 5, 0},
		{"negative and positive", -2, 3, -6},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Multiply(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("Multiply(%v, %v) = %v, want %v", tc.a, tc.b, result, tc.expected)
			}
		})
	}
}

func TestDivide(t *testing.T) {
	cases := []struct {
		name     string
		a, b     float64
		expected float64
		ok       bool
	}{
		{"exact division", 10, 2, 5, true},
		{"fractional result", 1, 4, 0.25, true},
		{"negative divisor", 6, -2, -3, true},
		{"zero dividend", 0, 7, 0, true},
		{"zero divisor", 10, 0, 0, false},
		{"zero over zero", 0, 0, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, ok := Divide(tc.a, tc.b)
			if ok != tc.ok {
				t.Fatalf("Divide(%v, %v) ok = %v, want %v", tc.a, tc.b, ok, tc.ok)
			}
			if ok && result != tc.expected {
				t.Errorf("Divide(%v, %v) = %v, want %v", tc.a, tc.b, result, tc.expected)
			}
		})
	}
}

func TestParseOperator(t *testing.T) {
	cases := []struct {
		name  string
		input string
		op    Operator
		valid bool
	}{
		{"plus", "+", OpAdd, true},
		{"minus", "-", OpSubtract, true},
		{"star", "*", OpMultiply, true},
		{"slash", "/", OpDivide, true},
		{"surrounding whitespace", " * ", OpMultiply, true},
		{"empty", "", "", false},
		{"word", "plus", "", false},
		{"caret", "^", "", false},
		{"double symbol", "++", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			op, err := ParseOperator(tc.input)
			if tc.valid {
				if err != nil {
					t.Fatalf("ParseOperator(%q) returned error: %v", tc.input, err)
				}
				if op != tc.op {
					t.Errorf("ParseOperator(%q) = %q, want %q", tc.input, op, tc.op)
				}
				return
			}
			if err == nil {
				t.Errorf("ParseOperator(%q) = %q, want error", tc.input, op)
			}
		})
	}
}

func TestEvaluateLeftFold(t *testing.T) {
	cases := []struct {
		name      string
		operands  []float64
		operators []Operator
		expected  float64
	}{
		{"no precedence", []float64{2, 3, 4, 5}, []Operator{OpAdd, OpMultiply, OpSubtract}, 15},
		{"all additions", []float64{1, 1, 1, 1}, []Operator{OpAdd, OpAdd, OpAdd}, 4},
		{"mixed with division", []float64{10, 2, 3, 5}, []Operator{OpDivide, OpMultiply, OpSubtract}, 10},
		{"negatives", []float64{-2, 4, 3, 1}, []Operator{OpAdd, OpMultiply, OpSubtract}, 5},
		{"fractional fold", []float64{1, 2, 2, 1}, []Operator{OpDivide, OpDivide, OpAdd}, 1.25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Evaluate(tc.operands, tc.operators)
			if err != nil {
				t.Fatalf("Evaluate returned error: %v", err)
			}
			if result.IsDivisionByZero() {
				t.Fatalf("Evaluate reported division by zero, want %v", tc.expected)
			}
			if result.Value() != tc.expected {
				t.Errorf("Evaluate = %v, want %v", result.Value(), tc.expected)
			}
		})
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	t.Run("zero divisor on last step", func(t *testing.T) {
		result, err := Evaluate([]float64{10, 2, 3, 0}, []Operator{OpDivide, OpMultiply, OpDivide})
		if err != nil {
			t.Fatalf("Evaluate returned error: %v", err)
		}
		if !result.IsDivisionByZero() {
			t.Fatalf("expected division-by-zero marker, got %v", result.Value())
		}
		if result.String() != DivisionByZeroMarker {
			t.Errorf("String() = %q, want %q", result.String(), DivisionByZeroMarker)
		}
	})

	t.Run("short-circuits remaining steps", func(t *testing.T) {
		// 5/0 happens on the first step; the later operators must not run.
		result, err := Evaluate([]float64{5, 0, 3, 2}, []Operator{OpDivide, OpAdd, OpAdd})
		if err != nil {
			t.Fatalf("Evaluate returned error: %v", err)
		}
		if !result.IsDivisionByZero() {
			t.Fatalf("expected division-by-zero marker, got %v", result.Value())
		}
	})

	t.Run("dividing zero is not an error", func(t *testing.T) {
		result, err := Evaluate([]float64{0, 5, 1, 1}, []Operator{OpDivide, OpMultiply, OpAdd})
		if err != nil {
			t.Fatalf("Evaluate returned error: %v", err)
		}
		if result.IsDivisionByZero() {
			t.Fatal("expected numeric result")
		}
		if result.Value() != 1 {
			t.Errorf("Evaluate = %v, want 1", result.Value())
		}
	})
}

func TestEvaluateArityErrors(t *testing.T) {
	if _, err := Evaluate([]float64{1, 2, 3}, []Operator{OpAdd, OpAdd, OpAdd}); err == nil {
		t.Error("expected error for 3 operands")
	}
	if _, err := Evaluate([]float64{1, 2, 3, 4}, []Operator{OpAdd, OpAdd}); err == nil {
		t.Error("expected error for 2 operators")
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		name     string
		input    float64
		expected string
	}{
		{"integer value", 15, "15"},
		{"fraction", 0.25, "0.25"},
		{"negative", -3.5, "-3.5"},
		{"repeating decimal", 1.0 / 3.0, "0.3333333333333333"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := FormatNumber(tc.input)
			if result != tc.expected {
				t.Errorf("FormatNumber(%v) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestExpression(t *testing.T) {
	got := Expression([]float64{10, 2, 3, 0}, []Operator{OpDivide, OpMultiply, OpDivide})
	want := "10 / 2 * 3 / 0"
	if got != want {
		t.Errorf("Expression = %q, want %q", got, want)
	}
}
