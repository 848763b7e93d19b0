package script

import (
	"encoding/json"
	"fmt"
	"io"
)

// displayer writes a list's values, one per line.
type displayer interface {
	Display(w io.Writer) error
}

// Result is the outcome of one step.
type Result struct {
	Step  int
	RunID string
	List  string
	Op    string
	// Value is set by operations that yield one value.
	Value any
	// Values holds the list contents for displayList.
	Values []any
	// Err is the failure message, empty on success.
	Err string

	source displayer
}

// Failed reports whether the step returned an error.
func (r Result) Failed() bool {
	return r.Err != ""
}

// Reporter receives each step result as it completes.
type Reporter interface {
	Report(Result) error
}

// TextReporter writes results for people. displayList prints each value on
// its own line; value-returning operations print "list.op: value"; failures
// print "list.op: error: message". Successful mutations print nothing.
type TextReporter struct {
	w io.Writer
}

// NewTextReporter returns a TextReporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// Report writes res in the text format described on TextReporter.
func (t *TextReporter) Report(res Result) error {
	if res.Failed() {
		_, err := fmt.Fprintf(t.w, "%s.%s: error: %s\n", res.List, res.Op, res.Err)
		return err
	}
	if res.source != nil {
		return res.source.Display(t.w)
	}
	if res.Values != nil {
		for _, v := range res.Values {
			if _, err := fmt.Fprintln(t.w, v); err != nil {
				return err
			}
		}
		return nil
	}
	if res.Value != nil {
		_, err := fmt.Fprintf(t.w, "%s.%s: %v\n", res.List, res.Op, res.Value)
		return err
	}
	return nil
}

// JSONReporter writes one JSON object per step (JSON Lines).
type JSONReporter struct {
	enc *json.Encoder
}

// NewJSONReporter returns a JSONReporter writing to w.
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{enc: json.NewEncoder(w)}
}

// Report encodes res as one JSON object. value, values and error are
// omitted when empty.
func (j *JSONReporter) Report(res Result) error {
	rec := map[string]any{
		"step":   res.Step,
		"run_id": res.RunID,
		"list":   res.List,
		"op":     res.Op,
	}
	if res.Value != nil {
		rec["value"] = res.Value
	}
	if res.Values != nil {
		rec["values"] = res.Values
	}
	if res.Failed() {
		rec["error"] = res.Err
	}
	return j.enc.Encode(rec)
}
