package schema

import "fmt"

// SchemaError reports a structurally invalid document node: a required key is
// missing, or a node has the wrong kind (e.g. a sequence where a mapping was
// expected). Decode aborts on the first one.
type SchemaError struct {
	Line int    // 1-based line in the source document, 0 if unknown
	Key  string // offending or missing key, if any
	Msg  string
}

func (e *SchemaError) Error() string {
	switch {
	case e.Line > 0 && e.Key != "":
		return fmt.Sprintf("line %d: %s %q", e.Line, e.Msg, e.Key)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	case e.Key != "":
		return fmt.Sprintf("%s %q", e.Msg, e.Key)
	default:
		return e.Msg
	}
}

// ClassError reports a bipartition class value outside {0, 1}.
type ClassError struct {
	Line  int
	Value int
}

func (e *ClassError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: bipart class must be 0 or 1, got %d", e.Line, e.Value)
	}
	return fmt.Sprintf("bipart class must be 0 or 1, got %d", e.Value)
}

// InvariantError reports a matrix snapshot whose counts disagree with its
// shape: ones+zeros != rows*columns. Whether this rejects the document is a
// decode policy; the data itself is never rewritten.
type InvariantError struct {
	Path                       string // record position inside the document
	Rows, Columns, Ones, Zeros int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: ones+zeros = %d, want rows*columns = %d",
		e.Path, e.Ones+e.Zeros, e.Rows*e.Columns)
}
