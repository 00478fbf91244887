package blocks

import (
	"strings"
	"testing"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		// Single-line documents
		{
			name:  "empty input renders one empty paragraph",
			input: "",
			want:  "<p></p>",
		},
		{
			name:  "plain text renders as paragraph",
			input: "hello world",
			want:  "<p>hello world</p>",
		},
		{
			name:  "level one heading",
			input: "# Title",
			want:  "<h1>Title</h1>",
		},
		{
			name:  "level three heading",
			input: "### Title",
			want:  "<h3>Title</h3>",
		},
		{
			name:  "level six heading",
			input: "###### Title",
			want:  "<h6>Title</h6>",
		},
		{
			name:  "horizontal rule",
			input: "---",
			want:  "<hr></hr>",
		},
		{
			name:  "rule prefix keeps extra dashes as content",
			input: "----",
			want:  "<hr>-</hr>",
		},
		// Lines that look like markers but are not
		{
			name:  "heading marker without space is a paragraph",
			input: "####heading",
			want:  "<p>####heading</p>",
		},
		{
			name:  "indented heading marker is a paragraph",
			input: "  # Title",
			want:  "<p>  # Title</p>",
		},
		{
			name:  "two dashes are a paragraph",
			input: "--",
			want:  "<p>--</p>",
		},
		// Content passes through untouched
		{
			name:  "heading remainder keeps inner and trailing spaces",
			input: "##  spaced content ",
			want:  "<h2> spaced content </h2>",
		},
		{
			name:  "html in content is not escaped",
			input: "a <b>bold</b> claim",
			want:  "<p>a <b>bold</b> claim</p>",
		},
		{
			name:  "inline markdown is not interpreted",
			input: "some *emphasis* and [a link](x)",
			want:  "<p>some *emphasis* and [a link](x)</p>",
		},
		// Multi-line documents
		{
			name:  "mixed document concatenates without separators",
			input: "# A\nplain\n## B",
			want:  "<h1>A</h1><p>plain</p><h2>B</h2>",
		},
		{
			name:  "blank line between paragraphs renders empty paragraph",
			input: "one\n\ntwo",
			want:  "<p>one</p><p></p><p>two</p>",
		},
		{
			name:  "trailing newline produces trailing empty paragraph",
			input: "last\n",
			want:  "<p>last</p><p></p>",
		},
		{
			name:  "rule between headings",
			input: "# A\n---\n# B",
			want:  "<h1>A</h1><hr></hr><h1>B</h1>",
		},
		{
			name:  "carriage returns are content, not line breaks",
			input: "a\r\nb",
			want:  "<p>a\r</p><p>b</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Convert(tt.input)
			if got != tt.want {
				t.Errorf("Convert(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvert_Deterministic(t *testing.T) {
	t.Parallel()

	input := "# Title\n\nsome text\n---\n###### fine print"
	first := Convert(input)
	for i := 0; i < 100; i++ {
		if got := Convert(input); got != first {
			t.Fatalf("run %d produced %q, first run produced %q", i, got, first)
		}
	}
}

func TestConvert_LineCountMatchesFragmentCount(t *testing.T) {
	t.Parallel()

	input := "# A\n\nplain\n---\n## B\n"
	lines := strings.Count(input, "\n") + 1
	got := Convert(input)
	// "<h" covers both headings and <hr>.
	opens := strings.Count(got, "<p>") + strings.Count(got, "<h")
	if opens != lines {
		t.Errorf("got %d fragments for %d lines in %q", opens, lines, got)
	}
}

func TestConvert_Concurrent(t *testing.T) {
	t.Parallel()

	input := "# Shared\nbody\n---"
	want := Convert(input)

	done := make(chan string, 16)
	for i := 0; i < 16; i++ {
		go func() {
			done <- Convert(input)
		}()
	}
	for i := 0; i < 16; i++ {
		if got := <-done; got != want {
			t.Errorf("concurrent Convert = %q, want %q", got, want)
		}
	}
}
