// ABOUTME: Display width of styled strings with grapheme-aware segmentation
// ABOUTME: Padding and centering helpers used to lay out cells and tree rows

package width

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// StripANSI removes CSI escape sequences (colors, styles) from s.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\x1b' {
			b.WriteByte(s[i])
			continue
		}
		if i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7E) {
				i++
			}
			continue
		}
		i++
	}
	return b.String()
}

// VisibleWidth returns the display width of s. Escape sequences count as
// zero; East Asian wide characters and emoji count as two.
func VisibleWidth(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	s = StripANSI(s)
	w := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		r, _ := utf8.DecodeRuneInString(cluster)
		w += runewidth.RuneWidth(r)
	}
	return w
}

func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

// PadRight appends spaces until s is n columns wide.
func PadRight(s string, n int) string {
	if gap := n - VisibleWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// PadLeft prepends spaces until s is n columns wide.
func PadLeft(s string, n int) string {
	if gap := n - VisibleWidth(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}

// Center pads s on both sides to n columns; the odd column goes right.
func Center(s string, n int) string {
	gap := n - VisibleWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// Truncate shortens plain text to n columns, ending with an ellipsis when
// anything was cut.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return runewidth.Truncate(s, n, "…")
}
