package messages

import (
	"fmt"
	"strings"
	"time"

	"max.ks1230/khqr-bot/internal/entity/currency"
)

const commandParts = 2

type statsWindow struct {
	title  string
	since  time.Time
	counts map[string]int64
}

func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	split := strings.SplitN(text, " ", commandParts)

	if len(split) == commandParts {
		return split[0], split[1]
	}
	if strings.HasPrefix(text, "/") {
		return text, ""
	}
	return "", text
}

func totalOf(counts map[string]int64) int64 {
	var total int64
	for _, c := range counts {
		total += c
	}
	return total
}

func formatStats(windows []statsWindow) string {
	res := make([]string, 0, len(windows)+1)
	res = append(res, "QR codes shown")
	for _, w := range windows {
		parts := make([]string, 0, len(currency.Modes()))
		for _, m := range currency.Modes() {
			parts = append(parts, fmt.Sprintf("%s: %d", m.AltText(), w.counts[m.Key()]))
		}
		res = append(res, fmt.Sprintf("%s: %d (%s)", w.title, totalOf(w.counts), strings.Join(parts, ", ")))
	}
	return strings.Join(res, "\n")
}
