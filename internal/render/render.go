package render

import (
	"fmt"
	"strings"
	"unicode"

	intm "benchmark-reporter/internal"
	"benchmark-reporter/internal/benchmark"
)

// Title is the first line of every report comment. It also identifies a
// previously posted report, so it must stay byte-for-byte stable.
const Title = "## Benchmark Reports"

// trim strips the characters ECMAScript treats as white space: a byte-order
// mark counts, U+0085 does not.
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r == '\ufeff' || (r != '\u0085' && unicode.IsSpace(r))
	})
}

// PaddedMarkdown surrounds trimmed Markdown with blank lines.
func PaddedMarkdown(text string) string {
	return strings.Join([]string{
		"",
		trim(text),
		"",
	}, "\n")
}

// CollapsibleCodeBlock renders text as a fenced block inside a collapsed
// <details> section headed by summary.
func CollapsibleCodeBlock(summary string, lang benchmark.Format, text string) string {
	return strings.Join([]string{
		"<details><summary>",
		summary,
		"</summary>",
		"",
		"```" + string(lang),
		trim(text),
		"```",
		"",
		"</details>",
	}, "\n")
}

type Renderer struct {
	reports benchmark.ReportLocator
}

func NewRenderer(reports benchmark.ReportLocator) *Renderer {
	return &Renderer{reports: reports}
}

func (r *Renderer) inline(c benchmark.Category) (string, error) {
	text, err := r.reports.LoadReport(c, benchmark.ExtMarkdown)
	if err != nil {
		return "", err
	}
	return PaddedMarkdown(text), nil
}

func (r *Renderer) codeBlock(c benchmark.Category, summary string, lang benchmark.Format) (string, error) {
	ext, err := benchmark.ExtensionFor(lang)
	if err != nil {
		return "", err
	}
	text, err := r.reports.LoadReport(c, ext)
	if err != nil {
		return "", err
	}
	return CollapsibleCodeBlock(summary, lang, text), nil
}

// Item renders one regressed category: its Markdown summary followed by
// collapsed log and JSON reports.
func (r *Renderer) Item(item benchmark.Item) (string, error) {
	parsed, err := benchmark.ParseCategory(item.Category)
	if err != nil {
		return "", err
	}

	summary, err := r.inline(item.Category)
	if err != nil {
		return "", err
	}
	logs, err := r.codeBlock(item.Category, "Logs", benchmark.FormatLog)
	if err != nil {
		return "", err
	}
	data, err := r.codeBlock(item.Category, "JSON", benchmark.FormatJSON)
	if err != nil {
		return "", err
	}

	return strings.Join([]string{
		"<details>",
		fmt.Sprintf("<summary><strong>%s</strong></summary>", parsed.Label()),
		"",
		summary,
		logs,
		data,
		"",
		"</details>",
	}, "\n"), nil
}

// Assemble builds the complete comment body for items, in the given order.
func (r *Renderer) Assemble(items []benchmark.Item, rc intm.RunConfig) (string, error) {
	lines := make([]string, 0, len(items)+4)
	lines = append(lines, Title, "", rc.CommitInfo(), "")

	for _, item := range items {
		rendered, err := r.Item(item)
		if err != nil {
			return "", fmt.Errorf("render %q: %w", string(item.Category), err)
		}
		lines = append(lines, rendered)
	}
	return strings.Join(lines, "\n"), nil
}
