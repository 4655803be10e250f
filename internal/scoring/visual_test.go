package scoring

import "testing"

func TestVideoVisualTags(t *testing.T) {
	t.Run("finds keywords case-insensitively", func(t *testing.T) {
		tags := VideoVisualTags("My CINEMATIC 4K b-roll montage")
		want := map[string]bool{"cinematic": true, "4k": true, "b-roll": true, "montage": true}
		if len(tags) != len(want) {
			t.Fatalf("tag count mismatch: got %v", tags)
		}
		for _, tag := range tags {
			if !want[tag] {
				t.Errorf("unexpected tag %q", tag)
			}
		}
	})

	t.Run("empty text yields no tags", func(t *testing.T) {
		if tags := VideoVisualTags(""); len(tags) != 0 {
			t.Errorf("expected no tags, got %v", tags)
		}
	})
}

func TestVideoAestheticsScore(t *testing.T) {
	tests := []struct {
		name   string
		tags   []string
		pace   float64
		colors []string
		want   int
	}{
		{
			name: "keyword pool capped at 40",
			tags: []string{"4k", "8k", "cinematic", "filmic"},
			want: 40,
		},
		{
			name: "stylized pace scores 30",
			pace: 220,
			want: 30,
		},
		{
			name: "deliberate pace scores 20",
			pace: 130,
			want: 20,
		},
		{
			name: "standard pace scores 10",
			pace: 155,
			want: 10,
		},
		{
			name:   "five colors score 30",
			colors: []string{"#111111", "#222222", "#333333", "#444444", "#555555"},
			want:   30,
		},
		{
			name:   "three colors score 15",
			colors: []string{"#111111", "#222222", "#333333"},
			want:   15,
		},
		{
			name: "empty inputs score zero",
			want: 0,
		},
		{
			name:   "total capped at 100",
			tags:   []string{"4k", "8k", "cinematic", "filmic", "b-roll"},
			pace:   220,
			colors: []string{"#1", "#2", "#3", "#4", "#5"},
			want:   100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VideoAestheticsScore(tt.tags, tt.pace, tt.colors)
			if got != tt.want {
				t.Errorf("score mismatch: got %d, want %d", got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("score out of range: %d", got)
			}
		})
	}
}

func TestImageAestheticsScore(t *testing.T) {
	t.Run("keyword pool capped at 50", func(t *testing.T) {
		tags := []string{"cinematic", "4k", "aesthetic", "shot on iphone"}
		if got := ImageAestheticsScore(tags, nil); got != 50 {
			t.Errorf("score mismatch: got %d, want 50", got)
		}
	})

	t.Run("rich palette plus keywords caps at 100", func(t *testing.T) {
		tags := []string{"cinematic", "4k", "aesthetic", "sonyalpha", "minimalist"}
		colors := []string{"#1", "#2", "#3", "#4", "#5"}
		if got := ImageAestheticsScore(tags, colors); got != 100 {
			t.Errorf("score mismatch: got %d, want 100", got)
		}
	})

	t.Run("three colors score 25", func(t *testing.T) {
		if got := ImageAestheticsScore(nil, []string{"#1", "#2", "#3"}); got != 25 {
			t.Errorf("score mismatch: got %d, want 25", got)
		}
	})

	t.Run("unknown tags score zero", func(t *testing.T) {
		if got := ImageAestheticsScore([]string{"vintage", "dji"}, nil); got != 0 {
			t.Errorf("score mismatch: got %d, want 0", got)
		}
	})
}

func TestCategorize(t *testing.T) {
	t.Run("video categories", func(t *testing.T) {
		cases := map[string]string{
			"Valorant gameplay highlights": "Gaming",
			"iPhone 15 review":             "Tech",
			"how to bake bread":            "Education",
			"random words":                 "General",
			"":                             "Unknown",
		}
		for text, want := range cases {
			if got := CategorizeVideoText(text); got != want {
				t.Errorf("CategorizeVideoText(%q) = %q, want %q", text, got, want)
			}
		}
	})

	t.Run("tweet categories", func(t *testing.T) {
		cases := map[string]string{
			"new AI coding assistant": "Tech",
			"ipl final tonight":       "Sports",
			"election results are in": "Politics & News",
			"completely unrelated":    "General",
		}
		for text, want := range cases {
			if got := CategorizeTweetText(text); got != want {
				t.Errorf("CategorizeTweetText(%q) = %q, want %q", text, got, want)
			}
		}
	})
}

func TestParseISO8601Duration(t *testing.T) {
	cases := map[string]int{
		"PT1H2M30S": 3750,
		"PT15M":     900,
		"PT45S":     45,
		"PT2H":      7200,
		"":          0,
		"1H30M":     0,
	}
	for input, want := range cases {
		if got := ParseISO8601Duration(input); got != want {
			t.Errorf("ParseISO8601Duration(%q) = %d, want %d", input, got, want)
		}
	}
}

func TestSpeakingPaceWPM(t *testing.T) {
	t.Run("counts words per minute", func(t *testing.T) {
		text := "one two three four five six"
		if got := SpeakingPaceWPM(text, 60); got != 6 {
			t.Errorf("pace mismatch: got %v, want 6", got)
		}
	})

	t.Run("zero duration yields zero", func(t *testing.T) {
		if got := SpeakingPaceWPM("words here", 0); got != 0 {
			t.Errorf("pace mismatch: got %v, want 0", got)
		}
	})
}
