package prompt

import (
	"strings"
	"testing"
)

func TestAssembleIsDeterministic(t *testing.T) {
	records := []FileRecord{
		{Path: "src/main.go", Content: "package main\n"},
		{Path: "README.md", Content: "# hi\n"},
	}
	tree := "├── src\n└── README.md\n"

	first := Assemble("demo", tree, records)
	second := Assemble("demo", tree, records)
	if first != second {
		t.Fatal("identical inputs produced different prompts")
	}
}

func TestAssemblePreservesRecordOrder(t *testing.T) {
	records := []FileRecord{
		{Path: "zz.go", Content: "z\n"},
		{Path: "aa.go", Content: "a\n"},
	}

	out := Assemble("demo", "", records)
	zi := strings.Index(out, "File: zz.go")
	ai := strings.Index(out, "File: aa.go")
	if zi == -1 || ai == -1 || zi > ai {
		t.Fatalf("file blocks out of insertion order (zz at %d, aa at %d)", zi, ai)
	}
}

func TestAssembleFenceTags(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"main.go", "```go\n"},
		{"script.PY", "```py\n"},
		{"Makefile", "```\n"},
		{"weird.", "```\n"},
		{"style.min.css", "```css\n"},
	}

	for _, tt := range tests {
		out := Assemble("demo", "", []FileRecord{{Path: tt.path, Content: "x\n"}})
		if !strings.Contains(out, tt.want) {
			t.Fatalf("prompt for %q missing fence %q:\n%s", tt.path, tt.want, out)
		}
	}
}

func TestAssembleIncludesTreeAndName(t *testing.T) {
	out := Assemble("myproj", "└── a.txt\n", nil)
	if !strings.Contains(out, `"myproj"`) {
		t.Fatal("prompt should name the project")
	}
	if !strings.Contains(out, "└── a.txt") {
		t.Fatal("prompt should embed the directory tree")
	}
}

func TestAssembleClosesUnterminatedContent(t *testing.T) {
	out := Assemble("demo", "", []FileRecord{{Path: "a.txt", Content: "no trailing newline"}})
	if !strings.Contains(out, "no trailing newline\n```\n") {
		t.Fatalf("fence must close on its own line:\n%s", out)
	}
}
