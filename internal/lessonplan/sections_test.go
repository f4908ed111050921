package lessonplan

import (
	"reflect"
	"testing"
)

const sampleLessonText = `LESSON PLAN

---LEARNING OBJECTIVES---
1. Understand photosynthesis
2. Identify the inputs and outputs

---LEARNING OUTCOMES---
• Students explain the process
• Students label a diagram

---ACTIVITIES---
- Group discussion
- Leaf experiment
- Diagram labelling

---ASSESSMENT---
Quiz on key terms
`

func TestExtractSection(t *testing.T) {
	tests := []struct {
		name    string
		section string
		want    string
	}{
		{
			name:    "numbered section",
			section: "LEARNING OBJECTIVES",
			want:    "1. Understand photosynthesis\n2. Identify the inputs and outputs",
		},
		{
			name:    "bulleted section",
			section: "LEARNING OUTCOMES",
			want:    "• Students explain the process\n• Students label a diagram",
		},
		{
			name:    "last section runs to end of text",
			section: "ASSESSMENT",
			want:    "Quiz on key terms",
		},
		{
			name:    "missing section yields empty string",
			section: "HOMEWORK",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSection(sampleLessonText, tt.section)
			if got != tt.want {
				t.Fatalf("ExtractSection(%q) = %q, want %q", tt.section, got, tt.want)
			}
		})
	}
}

func TestItemList(t *testing.T) {
	tests := []struct {
		name  string
		block string
		want  []string
	}{
		{
			name:  "empty block",
			block: "",
			want:  nil,
		},
		{
			name:  "numbered items",
			block: "1. First thing\n2. Second thing",
			want:  []string{"First thing", "Second thing"},
		},
		{
			name:  "paren enumerators",
			block: "1) First\n2) Second",
			want:  []string{"First", "Second"},
		},
		{
			name:  "bullets and hyphens",
			block: "• Bullet item\n- Hyphen item",
			want:  []string{"Bullet item", "Hyphen item"},
		},
		{
			name:  "blank lines dropped",
			block: "First\n\n\nSecond",
			want:  []string{"First", "Second"},
		},
		{
			name:  "plain lines kept verbatim",
			block: "Quiz on key terms",
			want:  []string{"Quiz on key terms"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ItemList(tt.block)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ItemList(%q) = %v, want %v", tt.block, got, tt.want)
			}
		})
	}
}

func TestDistribute(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		n     int
		want  [][]string
	}{
		{
			name:  "five items over four buckets wrap to the first",
			items: []string{"a", "b", "c", "d", "e"},
			n:     4,
			want:  [][]string{{"a", "e"}, {"b"}, {"c"}, {"d"}},
		},
		{
			name:  "fewer items than buckets leaves placeholders",
			items: []string{"a", "b"},
			n:     4,
			want:  [][]string{{"a"}, {"b"}, {"-"}, {"-"}},
		},
		{
			name:  "empty items fill every bucket with placeholder",
			items: nil,
			n:     3,
			want:  [][]string{{"-"}, {"-"}, {"-"}},
		},
		{
			name:  "single bucket takes everything",
			items: []string{"a", "b", "c"},
			n:     1,
			want:  [][]string{{"a", "b", "c"}},
		},
		{
			name:  "zero buckets",
			items: []string{"a"},
			n:     0,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distribute(tt.items, tt.n)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Distribute(%v, %d) = %v, want %v", tt.items, tt.n, got, tt.want)
			}
		})
	}
}
