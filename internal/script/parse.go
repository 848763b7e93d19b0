package script

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Script formats accepted by Parse.
const (
	FormatYAML  = "yaml"
	FormatJSONL = "jsonl"
)

// document is the top level of a YAML script.
type document struct {
	Steps []Step `yaml:"steps"`
}

// ParseYAML reads a YAML document of the form {steps: [...]}.
func ParseYAML(r io.Reader) ([]Step, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	for i, s := range doc.Steps {
		if s.Op == "" {
			return nil, fmt.Errorf("%w: step %d has no op", ErrParse, i+1)
		}
	}
	return doc.Steps, nil
}

// maxStepLine bounds one JSON Lines step.
const maxStepLine = 1 << 20

// ParseJSONL reads one JSON step per line. Blank lines are skipped; a
// malformed line fails the whole script.
func ParseJSONL(r io.Reader) ([]Step, error) {
	var steps []Step
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxStepLine)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		dec := json.NewDecoder(bytes.NewReader(line))
		dec.DisallowUnknownFields()
		var s Step
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrParse, lineNo, err)
		}
		if s.Op == "" {
			return nil, fmt.Errorf("%w: line %d has no op", ErrParse, lineNo)
		}
		steps = append(steps, s)
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d exceeds %d bytes", ErrParse, lineNo+1, maxStepLine)
		}
		return nil, fmt.Errorf("scanning script: %w", err)
	}
	return steps, nil
}

// ParseInline reads steps written as [list.]op[:arg[,arg...]]. For concat
// and copy the single argument names the other list.
//
//	append:1 b.push:7 insertAfter:1,5 concat:b display
func ParseInline(tokens []string) ([]Step, error) {
	steps := make([]Step, 0, len(tokens))
	for i, tok := range tokens {
		s, err := parseToken(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q: %v", ErrParse, i+1, tok, err)
		}
		steps = append(steps, s)
	}
	return steps, nil
}

func parseToken(tok string) (Step, error) {
	head, argStr, hasArgs := strings.Cut(tok, ":")

	var s Step
	if list, op, ok := strings.Cut(head, "."); ok {
		s.List, s.Op = list, op
	} else {
		s.Op = head
	}
	if s.Op == "" {
		return Step{}, errors.New("missing op")
	}
	if hasArgs {
		s.Args = strings.Split(argStr, ",")
	}

	if info, ok := LookupOp(s.Op); ok && info.Other && len(s.Args) == 1 {
		s.Other, s.Args = s.Args[0], nil
	}
	return s, nil
}

// Parse reads a script in the given format.
func Parse(r io.Reader, format string) ([]Step, error) {
	switch format {
	case FormatYAML:
		return ParseYAML(r)
	case FormatJSONL:
		return ParseJSONL(r)
	default:
		return nil, fmt.Errorf("unknown script format %q", format)
	}
}

// FormatForPath picks a script format from a file extension.
func FormatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".jsonl", ".json":
		return FormatJSONL, nil
	default:
		return "", fmt.Errorf("cannot infer script format from %q (use .yaml, .yml, .jsonl or .json)", path)
	}
}

// ParseFile opens path and parses it according to its extension.
func ParseFile(path string) ([]Step, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f, format)
}
