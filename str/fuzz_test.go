package str_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/hasbyte1/go-helpers/str"
)

// FuzzReverse checks that reversing valid UTF-8 twice is the identity.
//
// Run with: go test -fuzz=FuzzReverse ./str/
func FuzzReverse(f *testing.F) {
	for _, s := range []string{"", "a", "hello", "héllo", "日本語", "ae\u0301"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			t.Skip()
		}
		if got := str.Reverse(str.Reverse(s)); got != s {
			t.Fatalf("Reverse(Reverse(%q)) = %q", s, got)
		}
		if got := utf8.RuneCountInString(str.Reverse(s)); got != utf8.RuneCountInString(s) {
			t.Fatalf("Reverse changed the rune count of %q", s)
		}
	})
}

// FuzzTruncate checks that Truncate never exceeds maxLength runes and leaves
// short strings untouched.
func FuzzTruncate(f *testing.F) {
	f.Add("hello world", 8)
	f.Add("", 0)
	f.Add("日本語テキスト", 4)
	f.Add("abc", -3)
	f.Fuzz(func(t *testing.T, s string, maxLength int) {
		got := str.Truncate(s, maxLength)
		n := utf8.RuneCountInString(s)
		if n <= maxLength {
			if got != s {
				t.Fatalf("Truncate(%q, %d) = %q; want input unchanged", s, maxLength, got)
			}
			return
		}
		if l := utf8.RuneCountInString(got); l != max(maxLength, 0) {
			t.Fatalf("Truncate(%q, %d) has %d runes", s, maxLength, l)
		}
	})
}

// FuzzCountOccurrences checks the count against a non-overlapping scan.
func FuzzCountOccurrences(f *testing.F) {
	f.Add("aaaa", "aa")
	f.Add("hello world", "o")
	f.Add("", "")
	f.Fuzz(func(t *testing.T, s, search string) {
		got := str.CountOccurrences(s, search)
		if search == "" {
			if got != 0 {
				t.Fatalf("empty search counted %d", got)
			}
			return
		}
		want := 0
		for rest := s; ; {
			i := strings.Index(rest, search)
			if i < 0 {
				break
			}
			want++
			rest = rest[i+len(search):]
		}
		if got != want {
			t.Fatalf("CountOccurrences(%q, %q) = %d; want %d", s, search, got, want)
		}
	})
}
