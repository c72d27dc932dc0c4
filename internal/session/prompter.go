package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"
)

// Prompter reads command lines. Prompt returns io.EOF when input ends or
// the user aborts.
type Prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(line string)
	Close() error
}

// LinerPrompter reads from the terminal with line editing and a history
// file.
type LinerPrompter struct {
	state       *liner.State
	historyPath string
}

var _ Prompter = (*LinerPrompter)(nil)

// NewLinerPrompter opens the terminal. History is loaded from historyPath
// when it is set and saved back on Close.
func NewLinerPrompter(historyPath string) *LinerPrompter {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	return &LinerPrompter{state: ln, historyPath: historyPath}
}

func (p *LinerPrompter) Prompt(prompt string) (string, error) {
	line, err := p.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", io.EOF
	}
	return line, err
}

func (p *LinerPrompter) AppendHistory(line string) {
	p.state.AppendHistory(line)
}

// Close saves the history and restores the terminal.
func (p *LinerPrompter) Close() error {
	var werr error
	if p.historyPath != "" {
		f, err := os.Create(p.historyPath)
		if err != nil {
			werr = fmt.Errorf("write history: %w", err)
		} else {
			_, _ = p.state.WriteHistory(f)
			_ = f.Close()
		}
	}
	return errors.Join(werr, p.state.Close())
}

// ReaderPrompter reads lines from any reader, e.g. a pipe or a proof
// script. Prompts and the lines read are echoed to out when it is set, so
// a transcript looks like an interactive session.
type ReaderPrompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

var _ Prompter = (*ReaderPrompter)(nil)

func NewReaderPrompter(r io.Reader, out io.Writer) *ReaderPrompter {
	return &ReaderPrompter{scanner: bufio.NewScanner(r), out: out}
}

func (p *ReaderPrompter) Prompt(prompt string) (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	line := p.scanner.Text()
	if p.out != nil {
		fmt.Fprintf(p.out, "%s%s\n", prompt, line)
	}
	return line, nil
}

func (p *ReaderPrompter) AppendHistory(string) {}

func (p *ReaderPrompter) Close() error { return nil }
