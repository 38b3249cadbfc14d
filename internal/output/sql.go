package output

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chrisdamba/foodataseed/internal/models"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
)

// BuildInsert renders one multi-row INSERT statement for the table, one
// value tuple per row in generation order. An empty table still produces a
// syntactically complete file so the import step can apply every file
// unconditionally; it degenerates to a comment.
func BuildInsert(t Table) string {
	var b strings.Builder

	if len(t.Rows) == 0 {
		fmt.Fprintf(&b, "-- no rows generated for %s\n", t.Name)
		return b.String()
	}

	fmt.Fprintf(&b, "INSERT INTO %s (%s) VALUES\n", t.Name, strings.Join(t.Columns, ", "))
	for i, row := range t.Rows {
		literals := make([]string, len(row))
		for j, v := range row {
			literals[j] = sqlLiteral(v)
		}
		b.WriteString("  (")
		b.WriteString(strings.Join(literals, ", "))
		if i == len(t.Rows)-1 {
			b.WriteString(");\n")
		} else {
			b.WriteString("),\n")
		}
	}
	return b.String()
}

// sqlLiteral renders a single value. Strings get embedded single quotes
// doubled per the SQL string-literal rules; nil renders as NULL, never as an
// empty string.
func sqlLiteral(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return quote(val)
	case bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case Date:
		return quote(time.Time(val).Format(dateLayout))
	case Timestamp:
		return quote(time.Time(val).Format(timestampLayout))
	case models.WeeklyHours:
		return quote(val.String())
	default:
		return quote(fmt.Sprintf("%v", val))
	}
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
