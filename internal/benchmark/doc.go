// Package benchmark knows how benchmark categories map to report files on
// disk and which categories regressed.
//
// A category is the list of extra command-line flags a benchmark run was
// made with, for example "--quantity=apparent-size --max-depth=10". The
// reports of one category share a base name derived from those flags, and
// differ only by extension: a Markdown summary, the raw log, and the
// hyperfine JSON export.
package benchmark
