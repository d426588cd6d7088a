package export

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short passthrough", "低风险", 10, "低风险"},
		{"exact length", "低风险", 3, "低风险"},
		{"ascii truncated", "abcdef", 4, "abc…"},
		{"chinese truncated", "建议减少高脂肪食品的摄入频率", 5, "建议减少…"},
		{"single rune budget", "建议减少", 1, "建"},
		{"zero passthrough", "建议", 0, "建议"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := truncate(tc.in, tc.n)
			if got != tc.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.n, got, tc.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate produced invalid UTF-8: %q", got)
			}
		})
	}
}

func TestTruncateNeverSplitsRunes(t *testing.T) {
	s := strings.Repeat("钠", 50)
	for n := 0; n <= 52; n++ {
		if got := truncate(s, n); !utf8.ValidString(got) {
			t.Fatalf("invalid UTF-8 at budget %d: %q", n, got)
		}
	}
}
