package state

import "fmt"

func ClampCursor(cursor, size int) int {
	if size <= 0 {
		return 0
	}
	if cursor >= size {
		return size - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

// Window returns the half-open range [start, end) of at most height rows that
// keeps cursor roughly centred. The second pass pulls start back when the
// cursor is near the end so the window stays full.
func Window(size, cursor, height int) (int, int) {
	maxItems := max(height, 0)
	start := max(cursor-maxItems/2, 0)
	end := min(start+maxItems, size)
	start = max(end-maxItems, 0)
	return start, end
}

type StatusKind int

const (
	StatusIdle StatusKind = iota
	StatusLoading
	StatusError
)

// Status is the list lifecycle: exactly one of idle, loading or error. Only
// the error variant carries a message.
type Status struct {
	kind    StatusKind
	message string
}

func Idle() Status    { return Status{kind: StatusIdle} }
func Loading() Status { return Status{kind: StatusLoading} }

func Failed(message string) Status {
	return Status{kind: StatusError, message: message}
}

func (s Status) Kind() StatusKind { return s.kind }

// Message is empty unless the status is an error.
func (s Status) Message() string { return s.message }

func (s Status) String() string {
	switch s.kind {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error: " + s.message
	default:
		panic(fmt.Sprintf("unknown status kind %d", s.kind))
	}
}

// Column identifies a dashboard pane. Focus cycles through them in order.
type Column int

const (
	ColumnConversations Column = iota
	ColumnMessages
	ColumnDetails

	columnCount = 3
)

func (c Column) Next() Column {
	return Column((int(c) + 1) % columnCount)
}

// Prev wraps backwards; the remainder is normalized so it never goes negative.
func (c Column) Prev() Column {
	return Column(((int(c)-1)%columnCount + columnCount) % columnCount)
}

func (c Column) String() string {
	switch c {
	case ColumnConversations:
		return "Conversations"
	case ColumnMessages:
		return "Messages"
	case ColumnDetails:
		return "Details"
	default:
		panic(fmt.Sprintf("unknown column %d", int(c)))
	}
}

// Columns lists the panes in display order.
func Columns() []Column {
	return []Column{ColumnConversations, ColumnMessages, ColumnDetails}
}
