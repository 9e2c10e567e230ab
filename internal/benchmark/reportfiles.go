package benchmark

import (
	"fmt"
	"os"
	"path/filepath"

	intm "benchmark-reporter/internal"
)

type Extension string

const (
	ExtMarkdown Extension = "md"
	ExtLog      Extension = "log"
	ExtJSON     Extension = "json"
)

// Format is the fenced code block language a report is displayed with.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatLog      Format = "log"
	FormatJSON     Format = "json"
)

var extensions = map[Format]Extension{
	FormatMarkdown: ExtMarkdown,
	FormatLog:      ExtLog,
	FormatJSON:     ExtJSON,
}

func ExtensionFor(f Format) (Extension, error) {
	ext, ok := extensions[f]
	if !ok {
		return "", fmt.Errorf("%w: %q", intm.ErrUnknownFormat, string(f))
	}
	return ext, nil
}

func FileName(dir, reportName string, ext Extension) string {
	return filepath.Join(dir, fmt.Sprintf("benchmark-report.%s.%s", reportName, ext))
}

// ReportLocator returns the text of one report of a category.
type ReportLocator interface {
	LoadReport(c Category, ext Extension) (string, error)
}

// FileLocator reads reports from a directory using FileName.
type FileLocator struct {
	Dir string
}

func (l FileLocator) LoadReport(c Category, ext Extension) (string, error) {
	parsed, err := ParseCategory(c)
	if err != nil {
		return "", err
	}

	path := FileName(l.Dir, parsed.ReportName, ext)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", intm.ErrReportRead, err)
	}
	return string(data), nil
}
