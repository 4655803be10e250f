package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	infRepo "influencer-srv/internal/influencer/repository"
	"influencer-srv/internal/search"
)

const selectKeysPrompt = `
You are an intelligent query planner. Your task is to analyze a user's natural language query and determine the minimum set of fields (keys) required from a database to answer that query.

**Input:**
1.  'user_query': A natural language query from a user.
2.  'available_fields': A JSON array of all possible keys in the database schema.

**Your Instructions:**
1.  Read the 'user_query' to understand the user's intent (e.g., are they ranking, searching for a topic, or just looking for someone?).
2.  Select ONLY the keys from 'available_fields' that are absolutely necessary to answer the query.
3.  **ALWAYS include '_id' and 'platform' in your response**, as they are essential for identification and basic filtering.
4.  Handle Hinglish/typos: 'engamnet' means engagement, 'sabse zyada followers' means followers.
5.  Your output MUST be a valid JSON array of strings. Each string must be a key from the 'available_fields' list. Do NOT invent new keys.

**Examples:**
-   **user_query**: "top engamnet wlaa youtuber"
    **Expected Output**: ["_id", "platform", "metrics.engagement_rate_per_post"]
-   **user_query**: "Find influencers who promote AI products like perplexity"
    **Expected Output**: ["_id", "platform", "bio", "posts.title", "posts.description"]
-   **user_query**: "instagram pe sabse zyada followers kiske hai"
    **Expected Output**: ["_id", "platform", "followers"]
-   **user_query**: "Show me Vikas Divyakirti's bio"
    **Expected Output**: ["_id", "platform", "name", "username", "bio"]

---
**'available_fields'**:
%s

**'user_query'**:
"%s"

**Required Keys (JSON array of strings only):**
`

const matchIDsPrompt = `
You are a highly intelligent AI assistant that matches user queries to the best influencers from a provided list.

**Your Goal:**
Analyze the 'user_query' and return the '_id' objects of the most relevant influencers from the 'influencer_data_summary'.

**Reasoning Instructions:**
1.  **Understand the Query:** Break down the query into its core components (Topic, Ranking, etc.). Match against 'bio', 'metrics', and 'content_topics'.
2.  **Handle Ambiguity:** Interpret Hinglish and typos correctly.
3.  **Synthesize Information:** Use ALL the provided fields to make the best possible decision.

**CRITICAL OUTPUT FORMAT:**
- You MUST return a valid JSON array containing ONLY the '_id' object of the matching influencer(s).
- For "top" queries, usually return only the single best match.
- If no one is a good match, return an empty array [].

**Example of correct output:**
[
  {
    "_id": {
      "$oid": "691724b51e8fb83641deaeea"
    }
  }
]

influencer_data_summary:
%s

user_query:
"%s"

JSON Array of Matching _id Objects:
`

const filterObjectsPrompt = `
You are an AI search and relevance engine. Your goal is to find the most relevant influencer objects from the provided JSON data that match the user's intent.

**Core Task:**
- Understand the user's query, including its underlying intent and concepts.
- Search through the 'influencer_data' to find the most relevant matches.
- Return a JSON array of the matching objects. If no relevant objects are found, return an empty array [].

**Search & Relevance Instructions:**
1.  **Semantic Matching:** Do not just look for exact keywords. Understand the topic. For example, if the user asks for "psychology", an influencer who discusses "philosophy" and "logic" is highly relevant.
2.  **Broad Field Search:** You MUST search for relevance across all meaningful text fields, primarily: 'name', 'username', 'bio', 'posts.title', 'posts.description', and 'posts.category'. The 'bio' is especially important.
3.  **Typo Tolerance:** Be tolerant of minor spelling errors in the user's query (e.g., 'physcology' should be treated as 'psychology').
4.  **Closest Match:** If you cannot find a perfect match, return the CLOSEST and MOST RELEVANT object(s). It is better to return a partially relevant result than nothing.

**CRITICAL OUTPUT FORMATTING RULE:**
- Your final output MUST be a perfectly valid JSON array.
- **Do NOT add escape backslashes before Unicode characters.** Return all characters directly.
Now filter the following:

influencer_data:
%s

user_query:
"%s"

Return only the filtered JSON array.
`

// selectKeys asks the oracle which schema field paths the query needs.
// Anything other than a JSON array of known paths falls back to
// search.FallbackKeys; "_id" and "platform" are always forced in.
func (uc *implUseCase) selectKeys(ctx context.Context, query string) []string {
	fields, _ := json.MarshalIndent(search.FullSchemaKeys, "", "  ")
	prompt := fmt.Sprintf(selectKeysPrompt, string(fields), query)

	keys := append([]string(nil), search.FallbackKeys...)
	raw, err := uc.oracle.Generate(ctx, prompt)
	if err != nil {
		uc.l.Warnf(ctx, "search.usecase.selectKeys: oracle call failed, using fallback keys: %v", err)
		return forceIdentityKeys(keys)
	}

	var selected []string
	if err := json.Unmarshal([]byte(stripFences(raw)), &selected); err != nil || len(selected) == 0 {
		uc.l.Warnf(ctx, "search.usecase.selectKeys: unparsable key list %q, using fallback keys", raw)
		return forceIdentityKeys(keys)
	}

	known := make(map[string]bool, len(search.FullSchemaKeys))
	for _, k := range search.FullSchemaKeys {
		known[k] = true
	}
	keys = keys[:0]
	for _, k := range selected {
		if known[k] {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		keys = append(keys, search.FallbackKeys...)
	}
	return forceIdentityKeys(keys)
}

// matchIDs serializes the candidate rows with extended-JSON ids and asks the
// oracle for the matching id objects. Any malformed response yields an empty
// id list, never an error.
func (uc *implUseCase) matchIDs(ctx context.Context, candidates []infRepo.Candidate, query string) ([]string, error) {
	summary := make([]map[string]any, 0, len(candidates))
	for _, cand := range candidates {
		row := make(map[string]any, len(cand))
		for k, v := range cand {
			if k == "_id" {
				row[k] = map[string]any{"$oid": v}
				continue
			}
			row[k] = v
		}
		summary = append(summary, row)
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, err
	}

	raw, err := uc.oracle.Generate(ctx, fmt.Sprintf(matchIDsPrompt, string(data), query))
	if err != nil {
		return nil, err
	}

	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(stripFences(raw)), &entries); err != nil {
		uc.l.Warnf(ctx, "search.usecase.matchIDs: oracle did not return a JSON array: %v", err)
		return nil, nil
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		var item struct {
			ID struct {
				OID string `json:"$oid"`
			} `json:"_id"`
		}
		if err := json.Unmarshal(entry, &item); err != nil || item.ID.OID == "" {
			continue
		}
		ids = append(ids, item.ID.OID)
	}
	return ids, nil
}

// filterObjects is the whole-object mode: the oracle receives full candidate
// rows and its filtered array is the answer. Like matchIDs, a malformed
// response degrades to an empty result, never an error.
func (uc *implUseCase) filterObjects(ctx context.Context, candidates []infRepo.Candidate, query string) ([]map[string]any, error) {
	data, err := json.MarshalIndent(candidates, "", "  ")
	if err != nil {
		return nil, err
	}

	raw, err := uc.oracle.Generate(ctx, fmt.Sprintf(filterObjectsPrompt, string(data), query))
	if err != nil {
		return nil, err
	}

	var results []map[string]any
	if err := json.Unmarshal([]byte(stripFences(raw)), &results); err != nil {
		uc.l.Warnf(ctx, "search.usecase.filterObjects: oracle did not return a JSON array: %v", err)
		return nil, nil
	}
	return results, nil
}

func forceIdentityKeys(keys []string) []string {
	hasID, hasPlatform := false, false
	for _, k := range keys {
		switch k {
		case "_id":
			hasID = true
		case "platform":
			hasPlatform = true
		}
	}
	if !hasID {
		keys = append([]string{"_id"}, keys...)
	}
	if !hasPlatform {
		keys = append(keys, "platform")
	}
	return keys
}

// stripFences removes markdown code fences the oracle wraps JSON in.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

func cacheKey(mode, query string) string {
	sum := sha256.Sum256([]byte(mode + ":" + query))
	return "search:" + hex.EncodeToString(sum[:])
}
