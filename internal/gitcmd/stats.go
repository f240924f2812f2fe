package gitcmd

import (
	"regexp"
	"strconv"
	"strings"
)

// FileStat is the parsed change record for a single file.
type FileStat struct {
	Path      string
	Additions int
	Deletions int
	Binary    bool
}

// Stats aggregates the parsed summary of a diff.
type Stats struct {
	Files        []FileStat
	FilesChanged int
	Insertions   int
	Deletions    int
	Binary       bool
}

// summaryLineRegex matches the aggregate line of git diff --stat.
// Any of the three clauses may be absent, e.g. "1 file changed" alone.
// Example: " 3 files changed, 45 insertions(+), 12 deletions(-)"
var summaryLineRegex = regexp.MustCompile(
	`(\d+)\s+files?\s+changed(?:,\s+(\d+)\s+insertions?\(\+\))?(?:,\s+(\d+)\s+deletions?\(-\))?`)

// binarySentenceRegex matches the prose marker git emits for binary content.
// Example: "Binary files a/logo.png and b/logo.png differ"
var binarySentenceRegex = regexp.MustCompile(`Binary files .* differ`)

// ParseStat parses git diff --stat style output into Stats.
//
// It recognizes per-file lines of the shape "<path> | <count> <bar>",
// per-file binary lines of the shape "<path> | Bin ...", and the trailing
// aggregate line. When the aggregate line is absent, totals are summed from
// the per-file lines instead. Unrecognized lines are skipped; empty input
// yields zero totals. ParseStat never fails.
func ParseStat(text string) Stats {
	var stats Stats
	sawSummary := false

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := summaryLineRegex.FindStringSubmatch(line); m != nil {
			stats.FilesChanged += matchInt(m, 1)
			stats.Insertions += matchInt(m, 2)
			stats.Deletions += matchInt(m, 3)
			sawSummary = true
			continue
		}

		if binarySentenceRegex.MatchString(line) {
			stats.Binary = true
			continue
		}

		if file, ok := parseFileLine(line); ok {
			if file.Binary {
				stats.Binary = true
			}
			stats.Files = append(stats.Files, file)
		}
	}

	if !sawSummary {
		stats.FilesChanged = len(stats.Files)
		for _, f := range stats.Files {
			stats.Insertions += f.Additions
			stats.Deletions += f.Deletions
		}
	}

	return stats
}

// parseFileLine parses a per-file stat line: "path | 12 ++--" or "path | Bin 10 -> 20 bytes".
// The +/- bar is counted directly; git only scales the bar on wide diffs,
// where the aggregate line is authoritative anyway.
func parseFileLine(line string) (FileStat, bool) {
	idx := strings.LastIndex(line, "|")
	if idx < 0 {
		return FileStat{}, false
	}

	path := strings.TrimSpace(line[:idx])
	rest := strings.TrimSpace(line[idx+1:])
	if path == "" || rest == "" {
		return FileStat{}, false
	}

	// Binary files carry a "Bin" marker instead of a numeric delta and
	// contribute zero insertions/deletions.
	if rest == "Bin" || strings.HasPrefix(rest, "Bin ") {
		return FileStat{Path: path, Binary: true}, true
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return FileStat{}, false
	}
	count, err := strconv.Atoi(fields[0])
	if err != nil {
		return FileStat{}, false
	}

	file := FileStat{Path: path}
	if len(fields) > 1 {
		bar := fields[1]
		plus := strings.Count(bar, "+")
		minus := strings.Count(bar, "-")
		if plus+minus > 0 {
			file.Additions = count * plus / (plus + minus)
			file.Deletions = count - file.Additions
		}
	} else if count > 0 {
		file.Additions = count
	}
	return file, true
}

// ContainsBinaryMarker reports whether text carries git's binary-content
// prose marker. Used to detect binary files in full content output, where
// no stat lines exist.
func ContainsBinaryMarker(text string) bool {
	return binarySentenceRegex.MatchString(text)
}

// matchInt extracts an int from a regex match group, returning 0 when the
// group is absent or malformed.
func matchInt(matches []string, idx int) int {
	if idx >= len(matches) || matches[idx] == "" {
		return 0
	}
	val, err := strconv.Atoi(matches[idx])
	if err != nil {
		return 0
	}
	return val
}
