package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse processes input lines in order against the registry.
//
// Per line: blank (all-space) lines and comment lines (first non-space
// character '#') are skipped; lines without a delimiter occurrence are
// skipped; the rest are split once on the delimiter into name and
// value. A name registered at this node dispatches to that option's
// SetValue; a name unknown here is offered to the active subcommand, if
// one is selected, and otherwise silently ignored. Later assignments to
// the same name override earlier ones.
//
// The first conversion failure aborts parsing and is returned as a
// *LineError; lines before it have already been applied. Parse may be
// called again on the same node to layer further overrides.
func (p *Parser) Parse(lines []string) error {
	for i, line := range lines {
		if err := p.parseLine(line); err != nil {
			return &LineError{Line: line, LineNo: i + 1, Option: keyOf(line, p.delimiter), Err: err}
		}
	}
	return nil
}

// maxLineSize bounds a single input line in ParseReader. Sequence
// values can get long, so this sits well above bufio's 64KiB default.
const maxLineSize = 1 << 20

// ParseReader reads r line by line and parses it like Parse. The caller
// keeps ownership of r; confline never opens files itself. Lines longer
// than one MiB are rejected as a read error.
func (p *Parser) ParseReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if err := p.parseLine(line); err != nil {
			return &LineError{Line: line, LineNo: lineNo, Option: keyOf(line, p.delimiter), Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// parseLine applies a single raw line. A nil return covers both a
// successful dispatch and the several permissive skip cases.
func (p *Parser) parseLine(line string) error {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}

	name, value, found := strings.Cut(line, p.delimiter)
	if !found {
		// No delimiter means the line is not an assignment.
		return nil
	}

	return p.dispatch(name, value)
}

// dispatch routes a split assignment to this node's registry, falling
// through to the active subcommand chain for names unknown here.
func (p *Parser) dispatch(name, value string) error {
	if opt, ok := p.options[name]; ok {
		if p.observer != nil {
			p.observer(name, value)
		}
		return opt.SetValue(value)
	}

	if p.active != nil {
		return p.active.dispatch(name, value)
	}

	// Unknown key: tolerated so shared config files can carry
	// entries for other consumers.
	return nil
}

// keyOf recovers the key portion of a line for error context.
func keyOf(line, delimiter string) string {
	name, _, found := strings.Cut(line, delimiter)
	if !found {
		return ""
	}
	return name
}
