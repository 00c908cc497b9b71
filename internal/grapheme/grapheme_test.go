package grapheme

import "testing"

func TestSplit_MultiRuneGraphemes(t *testing.T) {
	family := "\U0001F468‍\U0001F469‍\U0001F467"
	text := "a" + "é" + family + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "é" {
		t.Fatalf("split[1]=%q, want %q", got[1], "é")
	}
	if got[2] != family {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
}

func TestWidth(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{text: "", want: 0},
		{text: "aeioucsz", want: 8},
		{text: "áéíóúčšž", want: 8},
		{text: "台北1234", want: 8},
		{text: "ＱＲＳ12", want: 8},
		{text: "ｱｲｳ12345", want: 8},
		{text: "é", want: 1},
	}
	for _, tc := range cases {
		if got := Width(tc.text); got != tc.want {
			t.Fatalf("Width(%q)=%d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestClusterWidth_ControlTakesOneCell(t *testing.T) {
	for _, cluster := range []string{"\t", "\x01", "\x7f"} {
		if got := ClusterWidth(cluster); got != 1 {
			t.Fatalf("ClusterWidth(%q)=%d, want 1", cluster, got)
		}
	}
	if got := Width("\treturn"); got != 7 {
		t.Fatalf("Width(tab-indented)=%d, want 7", got)
	}
}
