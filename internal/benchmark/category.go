package benchmark

import (
	"fmt"
	"regexp"
	"strings"

	intm "benchmark-reporter/internal"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Category is a benchmark category token as it appears in the matrix.
type Category string

type ParsedCategory struct {
	ReportName    string
	CommandSuffix []string
}

func ParseCategory(c Category) (ParsedCategory, error) {
	suffix := strings.Fields(string(c))
	if len(suffix) == 0 {
		return ParsedCategory{}, fmt.Errorf("%w: empty token", intm.ErrInvalidCategory)
	}

	names := make([]string, 0, len(suffix))
	for _, token := range suffix {
		name := strings.TrimLeft(strings.ToLower(token), "-")
		name = strings.Trim(nonSlug.ReplaceAllString(name, "-"), "-")
		if name == "" {
			return ParsedCategory{}, fmt.Errorf("%w: %q", intm.ErrInvalidCategory, string(c))
		}
		names = append(names, name)
	}

	return ParsedCategory{
		ReportName:    strings.Join(names, "_"),
		CommandSuffix: suffix,
	}, nil
}

// Label is the human readable form of the category used in headings.
func (p ParsedCategory) Label() string {
	return strings.Join(p.CommandSuffix, " ")
}
