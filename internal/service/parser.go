package service

import (
	"strconv"
	"strings"

	"datafeed/internal/model"
)

// defaultDisplaySecs is how long a message slide stays on screen when the
// playlist does not say otherwise.
const defaultDisplaySecs = 4

// Parse converts raw playlist text into an ordered list of typed items.
// It is pure and deterministic: the same text always yields the same items.
//
// One playlist entry per line. Blank lines and lines whose first character
// is '#' are dropped. Everything after the first '#' on a remaining line is
// a cosmetic comment. A line containing ";bgcolor:" or ";secs:" is a timed
// message; otherwise the content is a property reference, classified as a
// sale when it is all digits and as a rental when any letter is present.
// The digit-only rule is a convention baked into the reference data, not an
// inherent type distinction; if reference formats ever change it misfiles.
func Parse(text string) []model.Item {
	lines := strings.Split(text, "\n")
	items := make([]model.Item, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		content := line
		comment := ""
		if idx := strings.Index(line, "#"); idx >= 0 {
			content = strings.TrimSpace(line[:idx])
			comment = strings.TrimSpace(line[idx+1:])
		}

		if strings.Contains(content, ";bgcolor:") || strings.Contains(content, ";secs:") {
			items = append(items, parseMessage(content, comment))
			continue
		}

		kind := model.ItemRent
		if isDigits(content) {
			kind = model.ItemSale
		}
		items = append(items, model.Item{
			Kind:    kind,
			Ref:     content,
			Comment: comment,
		})
	}

	return items
}

// parseMessage parses "text;bgcolor:yellow;secs:4" message lines. Unknown
// parameters are ignored; an unparsable secs value silently falls back to
// the default rather than failing the line.
func parseMessage(content, comment string) model.Item {
	parts := strings.Split(content, ";")
	item := model.Item{
		Kind:    model.ItemMessage,
		Message: strings.TrimSpace(parts[0]),
		Comment: comment,
	}

	secs := defaultDisplaySecs
	for _, param := range parts[1:] {
		param = strings.TrimSpace(param)
		switch {
		case strings.HasPrefix(param, "bgcolor:"):
			item.BgColor = strings.TrimPrefix(param, "bgcolor:")
		case strings.HasPrefix(param, "secs:"):
			if v, err := strconv.Atoi(strings.TrimPrefix(param, "secs:")); err == nil {
				secs = v
			}
		}
	}
	item.DisplayMillis = secs * 1000

	return item
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
