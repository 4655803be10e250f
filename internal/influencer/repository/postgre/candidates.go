package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"influencer-srv/internal/influencer/repository"
)

// Candidates feeds the query planner's retrieval stage: non-deleted profiles
// flattened to one row per post (a LEFT JOIN keeps post-less profiles),
// ordered by engagement rate descending with missing metrics last, projected
// down to the requested field paths.
func (r *implRepository) Candidates(ctx context.Context, opt repository.CandidatesOptions) ([]repository.Candidate, error) {
	query := `
		SELECT p.id, p.name, p.username, p.bio, p.platform, p.followers, p.metrics, post.doc
		FROM influencers.influencer_profiles p
		LEFT JOIN LATERAL jsonb_array_elements(COALESCE(p.posts, '[]'::jsonb)) AS post(doc) ON true
		WHERE p.is_deleted = false
		ORDER BY (p.metrics->>'engagement_rate_per_post')::float DESC NULLS LAST
	`
	args := []interface{}{}
	if opt.Limit > 0 {
		query += " LIMIT $1"
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("Candidates: %w", err)
	}
	defer rows.Close()

	var candidates []repository.Candidate
	for rows.Next() {
		var (
			id, name, username, bio, platform string
			followers                         sql.NullInt64
			metricsJSON, postJSON             []byte
		)
		if err := rows.Scan(&id, &name, &username, &bio, &platform, &followers, &metricsJSON, &postJSON); err != nil {
			return nil, fmt.Errorf("Candidates scan: %w", err)
		}

		row := map[string]any{
			"_id":      id,
			"name":     name,
			"username": username,
			"bio":      bio,
			"platform": platform,
		}
		if followers.Valid {
			row["followers"] = followers.Int64
		}
		if metrics := decodeDoc(metricsJSON); metrics != nil {
			for k, v := range metrics {
				row["metrics."+k] = v
			}
		}
		if post := decodeDoc(postJSON); post != nil {
			for k, v := range post {
				row["posts."+k] = v
			}
		}

		candidates = append(candidates, project(row, opt.Keys))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Candidates rows: %w", err)
	}

	return candidates, nil
}

func decodeDoc(raw []byte) map[string]any {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil
	}
	return doc
}

// project keeps only the requested field paths. A "posts." or "metrics."
// prefix selects the whole nested value when the exact key is absent.
func project(row map[string]any, keys []string) repository.Candidate {
	if len(keys) == 0 {
		return repository.Candidate(row)
	}

	out := repository.Candidate{}
	for _, key := range keys {
		if v, ok := row[key]; ok {
			out[key] = v
			continue
		}
		// A bare prefix like "posts" selects every flattened sub-field.
		prefix := key + "."
		for k, v := range row {
			if strings.HasPrefix(k, prefix) {
				out[k] = v
			}
		}
	}
	return out
}
