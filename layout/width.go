package layout

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// StringWidth returns the number of terminal cells s occupies,
// segmenting by grapheme cluster first (so combining marks and
// multi-rune emoji sequences are measured once each, per Unicode
// 15.1 extended-pictographic and EAW_WIDE rules) and summing the
// display width of each cluster. Control characters below 0x20 and
// 0x7F are dropped except tab, which expands to two cells.
func StringWidth(s string) int {
	total := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		total += clusterWidth(cluster)
	}
	return total
}

func clusterWidth(cluster string) int {
	runes := []rune(cluster)
	if len(runes) == 1 {
		r := runes[0]
		if r == '\t' {
			return 2
		}
		if r < 0x20 || r == 0x7F {
			return 0
		}
	}
	return runewidth.StringWidth(cluster)
}

// TruncateToWidth returns the longest prefix of s whose StringWidth
// does not exceed max, truncating on grapheme-cluster boundaries.
func TruncateToWidth(s string, max int) string {
	if max <= 0 {
		return ""
	}
	out := make([]byte, 0, len(s))
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		w := clusterWidth(cluster)
		if used+w > max {
			break
		}
		out = append(out, cluster...)
		used += w
	}
	return string(out)
}
