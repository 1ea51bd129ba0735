// Package itemtext turns free-form "one item per line" text into structured
// items. Input comes from humans pasting into a textarea, so parsing is
// best-effort and never fails: malformed quantities degrade to 1 and
// malformed lines become plain names.
package itemtext

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/vbonduro/boxqr/internal/domain"
)

// shorthandRe matches the "name x 3" / "name×3" quantity convention. The
// digits must be the final characters of the (already trimmed) line.
var shorthandRe = regexp.MustCompile(`(?i)(.+?)[x×]\s*(\d+)$`)

// Parse converts a multi-line text block into items, one per non-blank line,
// in input order. Lines that reduce to an empty name are dropped.
func Parse(text string) []domain.Item {
	items := make([]domain.Item, 0)
	for _, line := range strings.Split(text, "\n") {
		if item, ok := ParseLine(line); ok {
			items = append(items, item)
		}
	}
	return items
}

// ParseLine parses a single line. Supported forms, tried in order:
//
//	Name, Qty     — split on the LAST comma; unparseable qty defaults to 1
//	Name x Qty    — trailing x or × shorthand, digits anchored at line end
//	Name          — bare name, qty 1
//
// The second return is false when the line is blank or has no name left
// after trimming.
func ParseLine(line string) (domain.Item, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return domain.Item{}, false
	}

	name := line
	qty := 1

	if idx := strings.LastIndex(line, ","); idx >= 0 {
		name = strings.TrimSpace(line[:idx])
		if n, err := strconv.Atoi(strings.TrimSpace(line[idx+1:])); err == nil {
			qty = n
		}
	} else if m := shorthandRe.FindStringSubmatch(line); m != nil {
		name = strings.TrimSpace(m[1])
		// \d+ always parses; overflow on absurd digit runs falls back to 1.
		if n, err := strconv.Atoi(m[2]); err == nil {
			qty = n
		}
	}

	if name == "" {
		return domain.Item{}, false
	}
	return domain.Item{Name: name, Qty: qty}, true
}
