package str_test

import (
	"testing"

	"github.com/hasbyte1/go-helpers/str"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in     string
		max    int
		suffix []string
		want   string
	}{
		{"hello world", 8, nil, "hello..."},
		{"hello", 8, nil, "hello"},
		{"hello", 5, nil, "hello"},
		{"hello world", 8, []string{"…"}, "hello w…"},
		{"hello world", 6, []string{""}, "hello "},
		{"héllo wörld", 8, nil, "héllo..."},
		{"hello world", 3, nil, "..."},
		{"hello", 2, nil, ".."},
		{"hello", 0, nil, ""},
		{"hello", -1, nil, ""},
	}
	for _, c := range cases {
		if got := str.Truncate(c.in, c.max, c.suffix...); got != c.want {
			t.Errorf("Truncate(%q, %d, %v) = %q; want %q", c.in, c.max, c.suffix, got, c.want)
		}
	}
}

func TestRemoveWhitespace(t *testing.T) {
	in := " a \t b\n c\u00a0d\u2003e\ufeff\r\n"
	if got := str.RemoveWhitespace(in); got != "abcde" {
		t.Fatalf("RemoveWhitespace = %q; want abcde", got)
	}
	if got := str.RemoveWhitespace("no-spaces"); got != "no-spaces" {
		t.Fatalf("RemoveWhitespace = %q", got)
	}
}

func TestCountOccurrences(t *testing.T) {
	cases := []struct {
		s, search string
		want      int
	}{
		{"aaaa", "aa", 2},
		{"hello world", "o", 2},
		{"a.b.c", ".", 2},
		{"(a)(a)", "(a)", 2},
		{"abc", "", 0},
		{"abc", "x", 0},
		{"", "a", 0},
		{"日本日本", "日本", 2},
	}
	for _, c := range cases {
		if got := str.CountOccurrences(c.s, c.search); got != c.want {
			t.Errorf("CountOccurrences(%q, %q) = %d; want %d", c.s, c.search, got, c.want)
		}
	}
}

func TestReverse(t *testing.T) {
	runCases(t, "Reverse", str.Reverse, []stringCase{
		{"hello", "olleh"},
		{"héllo", "olléh"},
		{"日本語", "語本日"},
		{"", ""},
		// combining acute accent lands on the wrong letter
		{"ae\u0301", "\u0301ea"},
	})
}

func TestReverseGraphemes(t *testing.T) {
	runCases(t, "ReverseGraphemes", str.ReverseGraphemes, []stringCase{
		{"hello", "olleh"},
		{"ae\u0301", "e\u0301a"},
		{"x\U0001F44D\U0001F3FDy", "y\U0001F44D\U0001F3FDx"},
		{"", ""},
	})
}

func TestIsPalindrome(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"A man, a plan, a canal: Panama", true},
		{"racecar", true},
		{"No 'x' in Nixon", true},
		{"12321", true},
		{"Été", true},
		{"", true},
		{"?!", true},
		{"hello", false},
		{"12 3", false},
	}
	for _, c := range cases {
		if got := str.IsPalindrome(c.in); got != c.want {
			t.Errorf("IsPalindrome(%q) = %v; want %v", c.in, got, c.want)
		}
	}
}
