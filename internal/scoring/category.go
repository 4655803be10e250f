package scoring

import "strings"

type categoryRule struct {
	name     string
	keywords []string
}

// Ordered first-match rules for video content.
var videoCategoryRules = []categoryRule{
	{"Gaming", []string{"gameplay", "stream", "fortnite", "valorant", "minecraft", "esports"}},
	{"Tech", []string{"review", "unboxing", "smartphone", "gadget", "ios", "android", "tech"}},
	{"Education", []string{"tutorial", "learn", "how to", "science", "history", "educational"}},
	{"Comedy", []string{"funny", "skit", "comedy", "roast", "parody"}},
	{"Vlog", []string{"vlog", "daily vlog", "travel", "lifestyle", "my day"}},
}

// Ordered first-match rules for short text posts.
var tweetCategoryRules = []categoryRule{
	{"Tech", []string{"tech", "gadget", "apple", "android", "ai", "crypto", "coding", "software"}},
	{"Gaming", []string{"gaming", "valorant", "bgmi", "esports", "stream", "playstation", "xbox"}},
	{"Entertainment", []string{"movie", "song", "roast", "comedy", "actor", "series", "video"}},
	{"Politics & News", []string{"politics", "government", "news", "election", "bjp", "congress"}},
	{"Lifestyle & Opinion", []string{"life", "thoughts", "feeling", "happy", "sad", "motivation"}},
	{"Sports", []string{"cricket", "football", "ipl", "team india", "virat kohli"}},
}

// CategorizeVideoText assigns a content category to video text by keywords.
// Empty text maps to "Unknown", no match to "General".
func CategorizeVideoText(text string) string {
	return categorize(text, videoCategoryRules)
}

// CategorizeTweetText assigns a content category to tweet text by keywords.
func CategorizeTweetText(text string) string {
	return categorize(text, tweetCategoryRules)
}

func categorize(text string, rules []categoryRule) string {
	if text == "" {
		return "Unknown"
	}

	lower := strings.ToLower(text)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.name
			}
		}
	}
	return "General"
}
