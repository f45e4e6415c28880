package main

import (
	"strings"
	"testing"
)

func TestLinter(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "marked statement",
			src:  "package p\nconst Q = `--sql 0b0f6a4e-6d1c-4a43-9a55-3f7c2a0e1b11\nselect 1`\n",
		},
		{
			name: "plain prose mentioning select",
			src:  "package p\nconst msg = \"please select a category\"\n",
		},
		{
			name: "unmarked statement",
			src:  "package p\nconst Q = `select id from users`\n",
			want: []string{"without --sql"},
		},
		{
			name: "bad uuid",
			src:  "package p\nconst Q = `--sql not-a-uuid\nselect 1`\n",
			want: []string{"invalid --sql marker"},
		},
		{
			name: "marker without statement",
			src:  "package p\nconst Q = `--sql 0b0f6a4e-6d1c-4a43-9a55-3f7c2a0e1b11\nhello`\n",
			want: []string{"not followed"},
		},
		{
			name: "duplicate marker",
			src: "package p\nvar qs = []string{\n`--sql 0b0f6a4e-6d1c-4a43-9a55-3f7c2a0e1b11\ncreate table a (id int)`,\n" +
				"`--sql 0b0f6a4e-6d1c-4a43-9a55-3f7c2a0e1b11\ncreate table b (id int)`,\n}\n",
			want: []string{"duplicate marker"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := newLinter()
			if err := l.lintSource("p.go", tc.src); err != nil {
				t.Fatalf("lintSource() error: %v", err)
			}
			if len(l.violations) != len(tc.want) {
				t.Fatalf("violations = %+v, want %d", l.violations, len(tc.want))
			}
			for i, w := range tc.want {
				if !strings.Contains(l.violations[i].message, w) {
					t.Fatalf("violation %d = %q, want it to mention %q", i, l.violations[i].message, w)
				}
			}
		})
	}
}
