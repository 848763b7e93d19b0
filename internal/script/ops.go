package script

import (
	"sort"
	"strings"
)

// Canonical operation names.
const (
	OpPush          = "push"
	OpAppend        = "append"
	OpInsertAtIndex = "insertAtIndex"
	OpInsertAfter   = "insertAfter"
	OpInsertBefore  = "insertBefore"
	OpSize          = "size"
	OpDeleteFirst   = "deleteFirst"
	OpDeleteLast    = "deleteLast"
	OpDeleteNode    = "deleteNode"
	OpDeleteAtIndex = "deleteAtIndex"
	OpPeekFirst     = "peekFirst"
	OpPeekLast      = "peekLast"
	OpPeekAtIndex   = "peekAtIndex"
	OpContains      = "contains"
	OpReverse       = "reverseList"
	OpConcat        = "concat"
	OpCopy          = "copy"
	OpDisplay       = "displayList"
	OpClear         = "clear"
)

// OpInfo describes an operation a step may name.
type OpInfo struct {
	Name string
	// Args is the number of positional arguments.
	Args int
	// Other reports whether the step must name a second list.
	Other bool
	// Returns reports whether the operation yields a value.
	Returns bool
	Usage   string
}

var opTable = []OpInfo{
	{Name: OpPush, Args: 1, Usage: "insert value at the head"},
	{Name: OpAppend, Args: 1, Usage: "insert value at the tail"},
	{Name: OpInsertAtIndex, Args: 2, Usage: "insert value (2nd arg) before index (1st arg)"},
	{Name: OpInsertAfter, Args: 2, Usage: "insert value (2nd arg) after the first target (1st arg)"},
	{Name: OpInsertBefore, Args: 2, Usage: "insert value (2nd arg) before the first target (1st arg)"},
	{Name: OpSize, Returns: true, Usage: "count the nodes"},
	{Name: OpDeleteFirst, Returns: true, Usage: "remove the head"},
	{Name: OpDeleteLast, Returns: true, Usage: "remove the tail"},
	{Name: OpDeleteNode, Args: 1, Usage: "remove the first node equal to value"},
	{Name: OpDeleteAtIndex, Args: 1, Returns: true, Usage: "remove the node at index"},
	{Name: OpPeekFirst, Returns: true, Usage: "read the head"},
	{Name: OpPeekLast, Returns: true, Usage: "read the tail"},
	{Name: OpPeekAtIndex, Args: 1, Returns: true, Usage: "read the node at index"},
	{Name: OpContains, Args: 1, Returns: true, Usage: "report whether value is present"},
	{Name: OpReverse, Usage: "reverse the list in place"},
	{Name: OpConcat, Other: true, Usage: "move the other list's nodes to the tail"},
	{Name: OpCopy, Other: true, Usage: "replace contents with a copy of the other list"},
	{Name: OpDisplay, Returns: true, Usage: "print every value, head to tail"},
	{Name: OpClear, Usage: "drop every node"},
}

var opAliases = map[string]string{
	"reverse": OpReverse,
	"display": OpDisplay,
}

var opIndex = func() map[string]OpInfo {
	idx := make(map[string]OpInfo, len(opTable)+len(opAliases))
	for _, op := range opTable {
		idx[strings.ToLower(op.Name)] = op
	}
	for alias, name := range opAliases {
		idx[alias] = idx[strings.ToLower(name)]
	}
	return idx
}()

// LookupOp finds an operation by name, ignoring case.
func LookupOp(name string) (OpInfo, bool) {
	op, ok := opIndex[strings.ToLower(name)]
	return op, ok
}

// Ops returns every operation sorted by name.
func Ops() []OpInfo {
	out := make([]OpInfo, len(opTable))
	copy(out, opTable)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
