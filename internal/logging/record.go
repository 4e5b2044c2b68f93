package logging

import (
	"strconv"
	"strings"
	"time"
)

// Fields is an ordered list of key=value pairs attached to a log record.
// Ordering is preserved (unlike a map) so output is deterministic, matching
// the teacher's Event.Extra formatting intent without pulling in a
// structured-logging dependency.
type Fields []Field

// Field is one key=value pair.
type Field struct {
	Key   string
	Value string
}

// F appends a string-valued field.
func (f Fields) F(key, value string) Fields {
	return append(f, Field{Key: key, Value: value})
}

// FInt appends an integer-valued field.
func (f Fields) FInt(key string, value int) Fields {
	return append(f, Field{Key: key, Value: strconv.Itoa(value)})
}

// FDuration appends a duration-valued field.
func (f Fields) FDuration(key string, value time.Duration) Fields {
	return append(f, Field{Key: key, Value: value.String()})
}

// record is one formatted log line's inputs.
type record struct {
	Time    time.Time
	Level   Level
	Message string
	Fields  Fields
}

// format renders "<ISO-timestamp> [<LEVEL>] <message> key=val ..." per
// spec.md §6.
func (r record) format() string {
	var sb strings.Builder
	sb.WriteString(r.Time.Format(time.RFC3339Nano))
	sb.WriteString(" [")
	sb.WriteString(strings.ToUpper(r.Level.String()))
	sb.WriteString("] ")
	sb.WriteString(r.Message)
	for _, f := range r.Fields {
		sb.WriteByte(' ')
		sb.WriteString(f.Key)
		sb.WriteByte('=')
		sb.WriteString(f.Value)
	}
	return sb.String()
}
