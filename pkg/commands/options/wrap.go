package options

import "strings"

func Wrap80(text string) string {
	return Wrap(text, 80)
}

func Wrap(text string, width int) string {
	words := strings.Fields(strings.TrimSpace(text))
	if len(words) == 0 {
		return text
	}
	var b strings.Builder
	b.WriteString(words[0])
	room := width - len(words[0])
	for _, word := range words[1:] {
		if len(word)+1 > room {
			b.WriteString("\n" + word)
			room = width - len(word)
		} else {
			b.WriteString(" " + word)
			room -= 1 + len(word)
		}
	}
	return b.String()
}
