package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OnParseCommand_ShouldSplitCommandAndArgument(t *testing.T) {
	cases := []struct {
		text, cmd, arg string
	}{
		{text: "/start", cmd: "/start"},
		{text: "/stats now", cmd: "/stats", arg: "now"},
		{text: "a", arg: "a"},
		{text: "  b  ", arg: "b"},
	}

	for _, c := range cases {
		cmd, arg := parseCommand(c.text)
		assert.Equal(t, c.cmd, cmd, c.text)
		assert.Equal(t, c.arg, arg, c.text)
	}
}

func Test_OnFormatStats_ShouldListEveryCurrency(t *testing.T) {
	text := formatStats([]statsWindow{
		{title: "Today", counts: map[string]int64{"b": 2}},
		{title: "This month", counts: map[string]int64{"a": 1, "b": 4}},
	})

	assert.Equal(t, "QR codes shown\n"+
		"Today: 2 (Khmer Riel: 0, US Dollar: 2)\n"+
		"This month: 5 (Khmer Riel: 1, US Dollar: 4)", text)
}
