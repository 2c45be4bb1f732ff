// Package session implements the interactive prompt/response loop: collect
// four operands and three operators, fold them, report, and offer a repeat.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rahmanda/kalk/internal/calc"
	"github.com/rahmanda/kalk/internal/styles"
)

// User-facing text, kept in one place so the line-oriented session and the
// full-screen TUI stay word-for-word identical.
const (
	Banner                 = "=== Kalkulator 4 Angka ==="
	InvalidOperatorWarning = "Operator tidak valid! Masukkan +, -, *, atau /"
	InvalidNumberMessage   = "Error: Masukkan angka yang valid!"
	RepeatPrompt           = "Hitung lagi? (y/n): "
	Farewell               = "Terima kasih!"
)

// OperandPrompt returns the prompt for the nth operand (1-based).
func OperandPrompt(n int) string {
	return fmt.Sprintf("Masukkan angka ke-%d: ", n)
}

// OperatorPrompt returns the prompt for the nth operator (1-based).
func OperatorPrompt(n int) string {
	return fmt.Sprintf("Masukkan operator ke-%d (+, -, *, /): ", n)
}

// ParseOperand parses a line of user input as a float64 operand.
func ParseOperand(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

// WantsRepeat reports whether answer means "run again". Only a trimmed,
// case-insensitive "y" continues; anything else ends the session.
func WantsRepeat(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}

// Session runs evaluation rounds over a reader/writer pair until the user
// declines the repeat prompt or input is exhausted.
type Session struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a session reading prompts' answers from in and writing to out.
func New(in io.Reader, out io.Writer) *Session {
	return &Session{in: bufio.NewReader(in), out: out}
}

// Run drives the session loop. It returns nil on normal termination,
// including input being exhausted mid-round.
func (s *Session) Run() error {
	for {
		if err := s.runOnce(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		again, err := s.askRepeat()
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if !again {
			break
		}
	}
	fmt.Fprintln(s.out, styles.FaintStyle.Render(Farewell))
	return nil
}

// runOnce performs a single evaluation round. An unparsable operand aborts
// the round without an error so the caller still offers the repeat prompt.
func (s *Session) runOnce() error {
	fmt.Fprintln(s.out, styles.RenderBanner(Banner))

	operands := make([]float64, 0, calc.OperandCount)
	for i := 1; i <= calc.OperandCount; i++ {
		line, err := s.prompt(OperandPrompt(i))
		if err != nil {
			return err
		}
		n, err := ParseOperand(line)
		if err != nil {
			fmt.Fprintln(s.out, styles.RenderError(InvalidNumberMessage))
			return nil
		}
		operands = append(operands, n)
	}

	operators := make([]calc.Operator, 0, calc.OperatorCount)
	for i := 1; i <= calc.OperatorCount; i++ {
		op, err := s.readOperator(i)
		if err != nil {
			return err
		}
		operators = append(operators, op)
	}

	result, err := calc.Evaluate(operands, operators)
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "\nPerhitungan: %s\n", calc.Expression(operands, operators))
	fmt.Fprintf(s.out, "Hasil: %s\n", styles.RenderResult(result.String()))
	return nil
}

// readOperator re-prompts until a valid symbol is entered. Only a read
// failure breaks the loop.
func (s *Session) readOperator(n int) (calc.Operator, error) {
	for {
		line, err := s.prompt(OperatorPrompt(n))
		if err != nil {
			return "", err
		}
		op, err := calc.ParseOperator(line)
		if err != nil {
			fmt.Fprintln(s.out, styles.RenderWarning(InvalidOperatorWarning))
			continue
		}
		return op, nil
	}
}

func (s *Session) askRepeat() (bool, error) {
	line, err := s.prompt("\n" + RepeatPrompt)
	if err != nil {
		return false, err
	}
	return WantsRepeat(line), nil
}

// prompt writes text and reads one answer line. A final unterminated line is
// still returned; io.EOF is reported only when no input remains.
func (s *Session) prompt(text string) (string, error) {
	fmt.Fprint(s.out, styles.PromptStyle.Render(text))
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}
