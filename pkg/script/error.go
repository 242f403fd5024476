package script

import (
	"fmt"
	"strings"
)

// SyntaxError reports a malformed script. It carries the offending row
// and column (both 1-based), the source line the error occurred on, and
// a short message, so the caller can render the source-line-plus-caret
// diagnostic the parser's error contract requires.
type SyntaxError struct {
	Row     int
	Col     int
	Line    string
	Message string
}

func newSyntaxErrorAt(source string, row, col int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		Row:     row,
		Col:     col,
		Line:    sourceLine(source, row),
		Message: fmt.Sprintf(format, args...),
	}
}

func sourceLine(source string, row int) string {
	lines := strings.Split(source, "\n")
	if row < 1 || row > len(lines) {
		return ""
	}
	return lines[row-1]
}

// Error renders "<row>:<col>: syntax error: <message>" followed by the
// source line and a caret under the offending column.
func (e *SyntaxError) Error() string {
	col := e.Col
	if col < 1 {
		col = 1
	}
	caret := strings.Repeat(" ", col-1) + "^"
	return fmt.Sprintf("%d:%d: syntax error: %s\n%s\n%s", e.Row, e.Col, e.Message, e.Line, caret)
}
