package output

import (
	"fmt"
	"strings"

	"github.com/agora-protocol/dashboard/internal/domain"
)

// AllFormats renders the verbose console report and the detailed CSV together.
const AllFormats = "all"

// Render runs the formatter registered under format (or one of its aliases).
func Render(view *domain.DashboardView, format string) ([]byte, Formatter, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, nil, unsupported(format)
	}
	b, err := f.Format(view)
	if err != nil {
		return nil, f, fmt.Errorf("render %s: %w", f.Name(), err)
	}
	return b, f, nil
}

// GenerateReport writes the view in the requested format to dir and returns the written paths.
func GenerateReport(view *domain.DashboardView, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == AllFormats {
		var paths []string
		for _, f := range []Formatter{ConsoleVerboseFormatter{}, CSVDetailedExporter{}} {
			p, err := WriteFormatted(f, view, dir)
			if err != nil {
				return paths, err
			}
			paths = append(paths, p)
		}
		return paths, nil
	}
	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	p, err := WriteFormatted(f, view, dir)
	if err != nil {
		return nil, err
	}
	return []string{p}, nil
}

func unsupported(format string) error {
	// enrich error with available formatters and aliases
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
