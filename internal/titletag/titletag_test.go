package titletag

import "testing"

func TestExtract(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantTitle string
		wantTag   string
		wantOK    bool
	}{
		{
			name:      "single tag at end",
			raw:       "Buy milk #shopping",
			wantTitle: "Buy milk",
			wantTag:   "shopping",
			wantOK:    true,
		},
		{
			name:      "last tag wins and all are removed",
			raw:       "#a walk the #b dog",
			wantTitle: "walk the dog",
			wantTag:   "b",
			wantOK:    true,
		},
		{
			name:      "lone hash is literal text",
			raw:       "do # something",
			wantTitle: "do # something",
			wantOK:    false,
		},
		{
			name:      "no tag",
			raw:       "water the plants",
			wantTitle: "water the plants",
			wantOK:    false,
		},
		{
			name:   "empty input",
			raw:    "",
			wantOK: false,
		},
		{
			name:   "whitespace only",
			raw:    "   \t ",
			wantOK: false,
		},
		{
			name:      "tag only",
			raw:       "#errands",
			wantTitle: "",
			wantTag:   "errands",
			wantOK:    true,
		},
		{
			name:      "extra whitespace collapses",
			raw:       "  pay   rent   #home ",
			wantTitle: "pay rent",
			wantTag:   "home",
			wantOK:    true,
		},
		{
			name:      "hash inside a word is kept",
			raw:       "fix bug c#42",
			wantTitle: "fix bug c#42",
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, tag, ok := Extract(tt.raw)
			if title != tt.wantTitle || tag != tt.wantTag || ok != tt.wantOK {
				t.Errorf("Extract(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.raw, title, tag, ok, tt.wantTitle, tt.wantTag, tt.wantOK)
			}
		})
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	raw := "#x same input #y twice"
	t1, g1, _ := Extract(raw)
	t2, g2, _ := Extract(raw)
	if t1 != t2 || g1 != g2 {
		t.Errorf("Extract not deterministic: (%q,%q) vs (%q,%q)", t1, g1, t2, g2)
	}
}
