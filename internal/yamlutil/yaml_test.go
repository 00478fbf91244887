package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

type sample struct {
	Title string `yaml:"title"`
	Count int    `yaml:"count"`
	Draft bool   `yaml:"draft"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name: "valid document",
			data: []byte("title: hello\ncount: 3\ndraft: true"),
			dest: &sample{},
			check: func(t *testing.T, v any) {
				s := v.(*sample)
				if s.Title != "hello" || s.Count != 3 || !s.Draft {
					t.Errorf("got %+v, want {hello 3 true}", s)
				}
			},
		},
		{
			name: "unknown fields are tolerated",
			data: []byte("title: hello\ntags:\n  - a\n  - b\nauthor: someone"),
			dest: &sample{},
			check: func(t *testing.T, v any) {
				s := v.(*sample)
				if s.Title != "hello" {
					t.Errorf("Title = %q, want %q", s.Title, "hello")
				}
			},
		},
		{
			name:    "empty data",
			data:    nil,
			dest:    &sample{},
			wantErr: yamlutil.ErrEmptyDocument,
		},
		{
			name:    "nil destination",
			data:    []byte("title: hello"),
			dest:    nil,
			wantErr: yamlutil.ErrNilTarget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Unmarshal() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal() unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

func TestUnmarshal_MalformedYAML(t *testing.T) {
	t.Parallel()

	var s sample
	err := yamlutil.Unmarshal([]byte("title: [unclosed"), &s)
	if err == nil {
		t.Fatal("Unmarshal() expected error for malformed YAML, got nil")
	}
	if !strings.Contains(err.Error(), "yamlutil:") {
		t.Errorf("Unmarshal() error %q missing yamlutil prefix", err)
	}
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("known fields pass", func(t *testing.T) {
		t.Parallel()

		var s sample
		if err := yamlutil.UnmarshalStrict([]byte("title: ok\ncount: 1"), &s); err != nil {
			t.Fatalf("UnmarshalStrict() unexpected error: %v", err)
		}
		if s.Title != "ok" {
			t.Errorf("Title = %q, want %q", s.Title, "ok")
		}
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		t.Parallel()

		var s sample
		if err := yamlutil.UnmarshalStrict([]byte("title: ok\ntypo_field: x"), &s); err == nil {
			t.Fatal("UnmarshalStrict() expected error for unknown field, got nil")
		}
	})
}

func TestMaxDocumentSize(t *testing.T) {
	// Mutates the package-level cap; cannot run in parallel.
	orig := yamlutil.MaxDocumentSize
	yamlutil.MaxDocumentSize = 16
	defer func() { yamlutil.MaxDocumentSize = orig }()

	var s sample
	err := yamlutil.Unmarshal([]byte("title: something far past the cap"), &s)
	if !errors.Is(err, yamlutil.ErrDocumentTooLarge) {
		t.Errorf("Unmarshal() error = %v, want %v", err, yamlutil.ErrDocumentTooLarge)
	}
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	out, err := yamlutil.Marshal(sample{Title: "hello", Count: 2})
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	got := string(out)
	if !strings.Contains(got, "title: hello") || !strings.Contains(got, "count: 2") {
		t.Errorf("Marshal() = %q, want title and count fields", got)
	}
}
