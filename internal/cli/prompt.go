package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Prompter asks the user simple questions on a line-oriented stream.
// End of input answers every question with its default.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter reading answers from in and writing
// questions to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Confirm asks a yes/no question. An empty answer selects def.
func (p *Prompter) Confirm(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	for {
		answer, err := p.ask(fmt.Sprintf("%s [%s]: ", question, hint))
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes", "是":
			return true, nil
		case "n", "no", "否":
			return false, nil
		}
		yellow := color.New(color.FgYellow)
		_, _ = yellow.Fprintln(p.out, "  请输入 y 或 n")
	}
}

// Ask asks a free-form question. An empty answer selects def.
func (p *Prompter) Ask(question, def string) (string, error) {
	prompt := question + ": "
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]: ", question, def)
	}
	answer, err := p.ask(prompt)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// ask prints prompt and returns the trimmed answer. EOF yields an empty
// answer so that piped or closed input falls back to defaults.
func (p *Prompter) ask(prompt string) (string, error) {
	cyan := color.New(color.FgCyan)
	_, _ = cyan.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("读取输入失败: %w", err)
	}
	return strings.TrimSpace(line), nil
}
