package root

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PromptConfirmer asks for confirmation on a terminal.
type PromptConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPromptConfirmer reads answers from in and writes prompts to out.
func NewPromptConfirmer(in io.Reader, out io.Writer) *PromptConfirmer {
	return &PromptConfirmer{in: bufio.NewReader(in), out: out}
}

// Confirm accepts "s", "sim", "y" and "yes" in any case. Anything else,
// including end of input, declines.
func (p *PromptConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(p.out, "%s [s/N]: ", prompt)
	answer, err := p.in.ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "s", "sim", "y", "yes":
		return true
	default:
		return false
	}
}
