// Package script applies sequences of list operations, read from YAML,
// JSON Lines or command-line tokens, to a set of named lists.
package script

import (
	"encoding/json"
	"errors"
	"fmt"
)

// DefaultList names the list a step targets when it names none.
const DefaultList = "main"

// Script errors.
var (
	ErrUnknownOp = errors.New("unknown operation")
	ErrBadArity  = errors.New("wrong number of arguments")
	ErrBadValue  = errors.New("invalid value")
	ErrParse     = errors.New("malformed script")
)

// Step is one operation applied to a named list.
type Step struct {
	List  string `yaml:"list,omitempty" json:"list,omitempty"`
	Op    string `yaml:"op" json:"op"`
	Args  Args   `yaml:"args,omitempty" json:"args,omitempty"`
	Other string `yaml:"other,omitempty" json:"other,omitempty"`
}

// ListName returns the target list, falling back to DefaultList.
func (s Step) ListName() string {
	if s.List == "" {
		return DefaultList
	}
	return s.List
}

// Args holds step arguments as strings. In JSON, numbers and booleans are
// accepted alongside strings and kept in their literal form.
type Args []string

// UnmarshalJSON accepts a JSON array of strings, numbers and booleans.
func (a *Args) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(Args, 0, len(raw))
	for _, r := range raw {
		var s string
		if err := json.Unmarshal(r, &s); err == nil {
			out = append(out, s)
			continue
		}
		var v any
		if err := json.Unmarshal(r, &v); err != nil {
			return err
		}
		switch v.(type) {
		case float64, bool:
			out = append(out, string(r))
		default:
			return fmt.Errorf("argument %s must be a string, number or boolean", r)
		}
	}
	*a = out
	return nil
}

// StepError reports the step that failed and wraps the cause.
type StepError struct {
	Step int
	List string
	Op   string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s.%s): %v", e.Step, e.List, e.Op, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
