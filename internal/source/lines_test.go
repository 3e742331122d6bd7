package source

import "testing"

func TestNewLines(t *testing.T) {
	l := NewLines("domain A is {\r\n  ???\r\n}")
	if l.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", l.Count())
	}
	if got := l.Text(1); got != "  ???" {
		t.Fatalf("Text(1) = %q", got)
	}
	if got := l.Text(7); got != "" {
		t.Fatalf("Text(out of range) = %q, want empty", got)
	}
}

func TestNewLines_EmptyText(t *testing.T) {
	l := NewLines("")
	if l.Count() != 1 || l.UTF16Len(0) != 0 {
		t.Fatalf("empty text must produce one empty line")
	}
}

func TestUTF16Len(t *testing.T) {
	cases := map[string]int{
		"":      0,
		"abc":   3,
		"héllo": 5,
		"a😀b":   4,
	}
	for in, want := range cases {
		if got := UTF16Len(in); got != want {
			t.Fatalf("UTF16Len(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestIndexUTF16(t *testing.T) {
	hay := UTF16("type 😀 User is User")
	needle := UTF16("User")
	if got := IndexUTF16(hay, needle, 0); got != 8 {
		t.Fatalf("IndexUTF16 = %d, want 8", got)
	}
	if got := IndexUTF16(hay, needle, 9); got != 16 {
		t.Fatalf("IndexUTF16 from 9 = %d, want 16", got)
	}
	if got := LastIndexUTF16(hay, needle, 16); got != 8 {
		t.Fatalf("LastIndexUTF16 before 16 = %d, want 8", got)
	}
	if got := LastIndexUTF16(hay, needle, 8); got != -1 {
		t.Fatalf("LastIndexUTF16 before 8 = %d, want -1", got)
	}
}
