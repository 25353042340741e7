package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/eriklarko/primecubes/src/analyzer"
	"github.com/eriklarko/primecubes/src/boolexpr"
	"github.com/eriklarko/primecubes/src/enumtree"
	"github.com/eriklarko/primecubes/src/environment"
	"github.com/eriklarko/primecubes/src/truthtable"
	"gopkg.in/yaml.v3"
)

const (
	Prompt = "Type boolean function:"

	MessageIncorrectExpression = "incorrect expression"
	MessageWrongOperand        = "wrong operand"
)

var ErrNoInput = errors.New("no expression given")

type TUI struct {
	input  *os.File
	output io.Writer
}

func New() *TUI {
	return &TUI{
		input:  os.Stdin,
		output: os.Stdout,
	}
}

func (t *TUI) SetInput(input *os.File) {
	t.input = input
}

func (t *TUI) SetOutput(output io.Writer) {
	t.output = output
}

// ReadExpression returns the first line of the input. The user is prompted
// first when the input is a terminal.
func (t *TUI) ReadExpression() (string, error) {
	if environment.IsInteractive(t.input) {
		fmt.Fprintln(t.output, Prompt)
	}

	line, err := bufio.NewReader(t.input).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		slog.Error("failed to read user input", "error", err)
		return "", fmt.Errorf("failed to read expression: %w", err)
	}

	line = strings.TrimRight(line, "\r\n")
	if line == "" && errors.Is(err, io.EOF) {
		return "", ErrNoInput
	}
	return line, nil
}

// PrintReport writes the truth table and the primitive cubes, followed by the
// enumeration tree when showTree is set.
func (t *TUI) PrintReport(report *analyzer.Report, showTree bool) {
	fmt.Fprintln(t.output, "Truth table:")
	t.PrintTable(report.Table)

	fmt.Fprintln(t.output, "Primitive cubes:")
	t.PrintTable(report.PrimeImplicants)

	if showTree {
		t.PrintTree(report.Tree)
	}
}

// PrintTable writes a header of variable names and F, then one line per row
// with every cell prefixed by '|'.
func (t *TUI) PrintTable(table truthtable.Table) {
	var b strings.Builder
	for _, v := range table.Variables {
		fmt.Fprintf(&b, " %c\t", v)
	}
	b.WriteString(" F\n")

	for _, row := range table.Rows {
		for _, cell := range row {
			fmt.Fprintf(&b, "|%c\t", cell)
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	io.WriteString(t.output, b.String())
}

// PrintTree writes one node per line, indented by its level. Every node below
// the root is prefixed with the branch that leads to it.
func (t *TUI) PrintTree(tree *enumtree.Tree) {
	var b strings.Builder
	b.WriteString("Binary tree of solutions\n")

	tree.Walk(func(n *enumtree.Node, path []byte) {
		b.WriteString(strings.Repeat("  ", n.Level))
		if len(path) > 0 {
			fmt.Fprintf(&b, "%c- ", path[len(path)-1])
		}
		b.WriteByte(n.Name)
		b.WriteByte('\n')
	})
	b.WriteByte('\n')

	io.WriteString(t.output, b.String())
}

// PrintYAML writes the report as a YAML document.
func (t *TUI) PrintYAML(report *analyzer.Report) error {
	encoder := yaml.NewEncoder(t.output)
	encoder.SetIndent(2)
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return encoder.Close()
}

// PrintError writes the user facing message for err and reports whether err
// was a parse or evaluation error.
func (t *TUI) PrintError(err error) bool {
	message := Message(err)
	if message == "" {
		return false
	}
	fmt.Fprintln(t.output, message)
	return true
}

// Message maps parse errors to "incorrect expression" and evaluation errors
// to "wrong operand". Other errors give an empty string.
func Message(err error) string {
	var parseErr *boolexpr.ParseError
	if errors.As(err, &parseErr) {
		return MessageIncorrectExpression
	}

	var evalErr *boolexpr.EvalError
	if errors.As(err, &evalErr) {
		return MessageWrongOperand
	}
	return ""
}
