package output

import (
	"errors"
	"strconv"
)

// ErrUnsupportedFormat is returned for format names with no registered formatter.
var ErrUnsupportedFormat = errors.New("unsupported output format")

func intToString(i int) string { return strconv.Itoa(i) }

func int64ToString(i int64) string { return strconv.FormatInt(i, 10) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

// dash stands in for values that do not apply.
const dash = "-"

// ErrNilView is returned when a formatter is given no view to render.
var ErrNilView = errors.New("dashboard view is nil")
