package event

import "testing"

func TestIconFor(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"春の運動会", "🏃"},
		{"個人懇談", "💬"},
		{"避難訓練", "🚨"},
		{"夏休みプール開放", "🏊"},
		{"第2回保護者会", "👥"},
		{"お楽しみ会", DefaultIcon},
		{"", DefaultIcon},
	}
	for _, tc := range tests {
		if got := IconFor(tc.title); got != tc.want {
			t.Errorf("IconFor(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

// Declaration order decides when several keywords appear in one title. 運動会
// sits above the bare 運動 rule, so the more specific glyph wins.
func TestIconForPrecedence(t *testing.T) {
	if got := IconFor("秋季運動会と水泳教室"); got != "🏃" {
		t.Errorf("IconFor = %q, want 🏃 from the earlier 運動会 rule", got)
	}
}
