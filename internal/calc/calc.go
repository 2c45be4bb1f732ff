// Package calc provides the arithmetic core: binary primitives over float64,
// operator parsing, and the strict left-to-right fold used by the session.
package calc

import (
	"fmt"
	"strconv"
	"strings"
)

// OperandCount is the number of operands in one evaluation.
const OperandCount = 4

// OperatorCount is the number of operators in one evaluation.
const OperatorCount = OperandCount - 1

// DivisionByZeroMarker is the textual result reported when a divisor is zero.
const DivisionByZeroMarker = "Error: Tidak bisa dibagi dengan 0"

// Operator is one of the four supported arithmetic symbols.
type Operator string

const (
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "*"
	OpDivide   Operator = "/"
)

// ParseOperator validates s against the supported symbol set.
func ParseOperator(s string) (Operator, error) {
	switch op := Operator(strings.TrimSpace(s)); op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return op, nil
	default:
		return "", fmt.Errorf("invalid operator %q", s)
	}
}

// Add returns the sum of a and b.
func Add(a, b float64) float64 {
	return a + b
}

// Subtract returns a minus b.
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns a times b.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a divided by b. A zero divisor does not produce a quotient;
// ok is false and the caller must degrade to the division-by-zero marker.
func Divide(a, b float64) (quotient float64, ok bool) {
	if b == 0 {
		return 0, false
	}
	return a / b, true
}

// Result is the outcome of a fold: either a number or the division-by-zero
// marker. The zero value is the number 0.
type Result struct {
	value     float64
	divByZero bool
}

// NumberResult wraps a numeric result.
func NumberResult(v float64) Result {
	return Result{value: v}
}

// DivisionByZero is the marker result.
func DivisionByZero() Result {
	return Result{divByZero: true}
}

// IsDivisionByZero reports whether the result is the marker rather than a number.
func (r Result) IsDivisionByZero() bool {
	return r.divByZero
}

// Value returns the numeric result. Only meaningful when IsDivisionByZero is false.
func (r Result) Value() float64 {
	return r.value
}

// String renders the result for display: the marker text, or the shortest
// round-trip decimal form of the number.
func (r Result) String() string {
	if r.divByZero {
		return DivisionByZeroMarker
	}
	return FormatNumber(r.value)
}

// FormatNumber renders v in its shortest round-trip decimal form.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Apply dispatches op to the matching primitive.
func Apply(op Operator, a, b float64) (Result, error) {
	switch op {
	case OpAdd:
		return NumberResult(Add(a, b)), nil
	case OpSubtract:
		return NumberResult(Subtract(a, b)), nil
	case OpMultiply:
		return NumberResult(Multiply(a, b)), nil
	case OpDivide:
		q, ok := Divide(a, b)
		if !ok {
			return DivisionByZero(), nil
		}
		return NumberResult(q), nil
	default:
		return Result{}, fmt.Errorf("unknown operator %q", op)
	}
}

// Evaluate folds operands strictly left to right, applying each operator in
// input order with no precedence rules. A division by zero short-circuits the
// remaining steps and the marker becomes the final result.
func Evaluate(operands []float64, operators []Operator) (Result, error) {
	if len(operands) != OperandCount {
		return Result{}, fmt.Errorf("expected %d operands, got %d", OperandCount, len(operands))
	}
	if len(operators) != OperatorCount {
		return Result{}, fmt.Errorf("expected %d operators, got %d", OperatorCount, len(operators))
	}

	acc := operands[0]
	for i, op := range operators {
		step, err := Apply(op, acc, operands[i+1])
		if err != nil {
			return Result{}, err
		}
		if step.IsDivisionByZero() {
			return step, nil
		}
		acc = step.Value()
	}
	return NumberResult(acc), nil
}

// Expression renders the operands and operators interleaved in input order,
// e.g. "10 / 2 * 3 / 0".
func Expression(operands []float64, operators []Operator) string {
	var b strings.Builder
	for i, n := range operands {
		if i > 0 {
			b.WriteString(" ")
			b.WriteString(string(operators[i-1]))
			b.WriteString(" ")
		}
		b.WriteString(FormatNumber(n))
	}
	return b.String()
}
