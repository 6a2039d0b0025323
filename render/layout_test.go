package render

import (
	"testing"

	"github.com/iw2rmb/richtext/text"
)

func TestLayout_Widths(t *testing.T) {
	txt := text.NewWithAttributes("a\t", text.Attributes{"k": "1"})
	txt.Append(text.NewWithAttributes("世\n\t", text.Attributes{"k": "2"}))

	got := Layout(txt, Config{})
	if len(got) != 2 {
		t.Fatalf("runs=%d, want 2", len(got))
	}

	want := []struct {
		width int
		bytes text.Range
		utf16 text.Range
	}{
		{width: 4, bytes: text.Range{Start: 0, End: 2}, utf16: text.Range{Start: 0, End: 2}},
		{width: 6, bytes: text.Range{Start: 2, End: 7}, utf16: text.Range{Start: 2, End: 5}},
	}
	for i, w := range want {
		if got[i].Width != w.width {
			t.Fatalf("run %d width=%d, want %d", i, got[i].Width, w.width)
		}
		if got[i].Bytes != w.bytes {
			t.Fatalf("run %d bytes=%v, want %v", i, got[i].Bytes, w.bytes)
		}
		if got[i].UTF16 != w.utf16 {
			t.Fatalf("run %d utf16=%v, want %v", i, got[i].UTF16, w.utf16)
		}
	}
}

func TestLayout_PlainText(t *testing.T) {
	got := Layout(text.New("abc"), Config{})
	if len(got) != 1 || got[0].Width != 3 {
		t.Fatalf("layout=%+v, want one run of width 3", got)
	}
	if got := Layout(text.New(""), Config{}); len(got) != 0 {
		t.Fatalf("layout=%+v, want none", got)
	}
}

func TestWidth(t *testing.T) {
	cases := []struct {
		cluster string
		col     int
		tab     int
		want    int
	}{
		{cluster: "a", want: 1},
		{cluster: "世", want: 2},
		{cluster: "\t", col: 1, tab: 4, want: 3},
		{cluster: "\t", col: 4, tab: 4, want: 4},
		{cluster: "\t", col: 3, tab: 0, want: 1},
		{cluster: "e\u0301", want: 1},
	}
	for _, tc := range cases {
		if got := Width(tc.cluster, tc.col, tc.tab); got != tc.want {
			t.Fatalf("Width(%q, %d, %d)=%d, want %d", tc.cluster, tc.col, tc.tab, got, tc.want)
		}
	}
}
