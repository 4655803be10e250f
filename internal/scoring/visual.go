package scoring

import (
	"sort"
	"strings"
)

// Video keyword groups scanned in titles, descriptions and tags.
var videoVisualKeywords = map[string][]string{
	"Resolution":      {"4k", "8k", "hd", "1080p"},
	"Cinematic Style": {"cinematic", "filmic", "b-roll", "short film"},
	"Aesthetic Vibe":  {"aesthetic", "minimalist", "cozy", "vibe", "satisfying"},
	"Editing Style":   {"montage", "timelapse", "hyperlapse", "slow motion"},
	"Genre":           {"vlog", "tutorial", "unboxing", "review", "asmr"},
}

// Image keyword groups scanned in captions.
var imageVisualKeywords = map[string][]string{
	"Quality":   {"4k", "hd", "high quality"},
	"Style":     {"cinematic", "aesthetic", "vibe", "minimalist", "vintage"},
	"Equipment": {"shot on iphone", "sonyalpha", "dji"},
	"Type":      {"reels", "igtv", "photo dump", "tutorial"},
}

// Per-tag points for the video profile, capped at 40 in total.
var videoKeywordPoints = map[string]int{
	"4k": 20, "8k": 25, "cinematic": 15, "filmic": 15, "b-roll": 12,
	"aesthetic": 10, "minimalist": 8, "vibe": 5, "montage": 7,
	"timelapse": 7, "1080p": 5, "hd": 3,
}

// Per-tag points for the image profile, capped at 50 in total.
var imageKeywordPoints = map[string]int{
	"cinematic": 20, "4k": 15, "aesthetic": 12, "shot on iphone": 10,
	"sonyalpha": 10, "minimalist": 8, "reels": 5, "hd": 5,
}

// VideoVisualTags extracts visual style tags from video text (title,
// description, tags joined). Returns a deduplicated sorted list.
func VideoVisualTags(text string) []string {
	return scanKeywords(text, videoVisualKeywords)
}

// ImageVisualTags extracts visual style tags from an image caption.
func ImageVisualTags(caption string) []string {
	return scanKeywords(caption, imageVisualKeywords)
}

func scanKeywords(text string, groups map[string][]string) []string {
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	seen := map[string]bool{}
	for _, keywords := range groups {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				seen[kw] = true
			}
		}
	}

	tags := make([]string, 0, len(seen))
	for kw := range seen {
		tags = append(tags, kw)
	}
	sort.Strings(tags)
	return tags
}

// VideoAestheticsScore scores a video's visual quality in [0,100] from three
// independent pools: style tags (max 40), speaking pace (max 30) and
// dominant thumbnail colors (max 30).
func VideoAestheticsScore(styleTags []string, speakingPaceWPM float64, dominantColors []string) int {
	total := 0

	keywordScore := 0
	for _, tag := range styleTags {
		keywordScore += videoKeywordPoints[tag]
	}
	total += minI(keywordScore, 40)

	// Pace far outside conversational range reads as stylized editing.
	if speakingPaceWPM > 0 {
		switch {
		case speakingPaceWPM < 120 || speakingPaceWPM > 190:
			total += 30
		case speakingPaceWPM < 140 || speakingPaceWPM > 170:
			total += 20
		default:
			total += 10
		}
	}

	if len(dominantColors) >= 5 {
		total += 30
	} else if len(dominantColors) >= 3 {
		total += 15
	}

	return minI(total, 100)
}

// ImageAestheticsScore scores an image post's visual quality in [0,100] from
// style tags (max 50) and dominant colors (max 50).
func ImageAestheticsScore(styleTags []string, dominantColors []string) int {
	total := 0

	keywordScore := 0
	for _, tag := range styleTags {
		keywordScore += imageKeywordPoints[tag]
	}
	total += minI(keywordScore, 50)

	if len(dominantColors) >= 5 {
		total += 50
	} else if len(dominantColors) >= 3 {
		total += 25
	}

	return minI(total, 100)
}

func minI(a, b int) int {
	if a < b {
		return a
	}
	return b
}
