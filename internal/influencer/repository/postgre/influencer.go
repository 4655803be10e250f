package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"influencer-srv/internal/influencer/repository"
	"influencer-srv/internal/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const profileColumns = `
	id, platform_id, platform, name, username, bio, profile_pic_url,
	followers, posts, metrics, is_deleted, creator_id, created_at, last_updated
`

// Upsert inserts or overwrites a profile snapshot matched on
// (platform, platform_id). Last writer wins for the whole document.
func (r *implRepository) Upsert(ctx context.Context, opt repository.UpsertOptions) (model.InfluencerProfile, error) {
	p := opt.Profile
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.LastUpdated = now

	postsJSON, err := json.Marshal(p.Posts)
	if err != nil {
		return model.InfluencerProfile{}, fmt.Errorf("Upsert marshal posts: %w", err)
	}
	metricsJSON, err := json.Marshal(p.Metrics)
	if err != nil {
		return model.InfluencerProfile{}, fmt.Errorf("Upsert marshal metrics: %w", err)
	}

	query := `
		INSERT INTO influencers.influencer_profiles (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (platform, platform_id) DO UPDATE SET
			name = EXCLUDED.name,
			username = EXCLUDED.username,
			bio = EXCLUDED.bio,
			profile_pic_url = EXCLUDED.profile_pic_url,
			followers = EXCLUDED.followers,
			posts = EXCLUDED.posts,
			metrics = EXCLUDED.metrics,
			is_deleted = EXCLUDED.is_deleted,
			creator_id = COALESCE(EXCLUDED.creator_id, influencer_profiles.creator_id),
			last_updated = EXCLUDED.last_updated
		RETURNING ` + profileColumns

	row := r.db.QueryRowContext(ctx, query,
		p.ID, p.PlatformID, p.Platform, p.Name, p.Username, p.Bio, p.ProfilePicURL,
		nullableInt(p.Followers), postsJSON, metricsJSON, p.IsDeleted,
		nullableString(p.CreatorID), p.CreatedAt, p.LastUpdated,
	)

	saved, err := scanProfile(row)
	if err != nil {
		return model.InfluencerProfile{}, fmt.Errorf("Upsert: %w", err)
	}
	return saved, nil
}

// GetByID returns a non-deleted profile by id.
func (r *implRepository) GetByID(ctx context.Context, id string) (model.InfluencerProfile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM influencers.influencer_profiles
		WHERE id = $1 AND is_deleted = false
	`

	p, err := scanProfile(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.InfluencerProfile{}, repository.ErrNotFound
		}
		return model.InfluencerProfile{}, fmt.Errorf("GetByID: %w", err)
	}
	return p, nil
}

// GetByIDs returns the non-deleted profiles among ids, in no fixed order.
func (r *implRepository) GetByIDs(ctx context.Context, ids []string) ([]model.InfluencerProfile, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT ` + profileColumns + `
		FROM influencers.influencer_profiles
		WHERE id = ANY($1) AND is_deleted = false
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("GetByIDs: %w", err)
	}
	defer rows.Close()

	return collectProfiles(rows, "GetByIDs")
}

// ListByCreator returns a creator's non-deleted profiles on one platform.
func (r *implRepository) ListByCreator(ctx context.Context, opt repository.ListByCreatorOptions) ([]model.InfluencerProfile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM influencers.influencer_profiles
		WHERE creator_id = $1 AND platform = $2 AND is_deleted = false
		ORDER BY last_updated DESC
	`

	rows, err := r.db.QueryContext(ctx, query, opt.CreatorID, opt.Platform)
	if err != nil {
		return nil, fmt.Errorf("ListByCreator: %w", err)
	}
	defer rows.Close()

	return collectProfiles(rows, "ListByCreator")
}

// TopEngagement returns the platform's non-deleted profiles with the highest
// engagement rate.
func (r *implRepository) TopEngagement(ctx context.Context, opt repository.TopEngagementOptions) ([]model.InfluencerProfile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM influencers.influencer_profiles
		WHERE platform = $1 AND is_deleted = false
		ORDER BY (metrics->>'engagement_rate_per_post')::float DESC NULLS LAST
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, opt.Platform, opt.Limit)
	if err != nil {
		return nil, fmt.Errorf("TopEngagement: %w", err)
	}
	defer rows.Close()

	return collectProfiles(rows, "TopEngagement")
}

// SoftDelete marks a profile deleted; all read paths filter it afterwards.
func (r *implRepository) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE influencers.influencer_profiles
		SET is_deleted = true, last_updated = $2
		WHERE id = $1 AND is_deleted = false
	`

	result, err := r.db.ExecContext(ctx, query, id, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("SoftDelete: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("SoftDelete rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (model.InfluencerProfile, error) {
	var (
		p           model.InfluencerProfile
		followers   sql.NullInt64
		postsJSON   []byte
		metricsJSON []byte
		creatorID   sql.NullString
	)

	err := row.Scan(
		&p.ID, &p.PlatformID, &p.Platform, &p.Name, &p.Username, &p.Bio, &p.ProfilePicURL,
		&followers, &postsJSON, &metricsJSON, &p.IsDeleted, &creatorID,
		&p.CreatedAt, &p.LastUpdated,
	)
	if err != nil {
		return model.InfluencerProfile{}, err
	}

	if followers.Valid {
		v := int(followers.Int64)
		p.Followers = &v
	}
	if creatorID.Valid {
		p.CreatorID = &creatorID.String
	}
	if len(postsJSON) > 0 {
		if err := json.Unmarshal(postsJSON, &p.Posts); err != nil {
			return model.InfluencerProfile{}, fmt.Errorf("unmarshal posts: %w", err)
		}
	}
	if len(metricsJSON) > 0 && string(metricsJSON) != "null" {
		if err := json.Unmarshal(metricsJSON, &p.Metrics); err != nil {
			return model.InfluencerProfile{}, fmt.Errorf("unmarshal metrics: %w", err)
		}
	}

	return p, nil
}

func collectProfiles(rows *sql.Rows, op string) ([]model.InfluencerProfile, error) {
	var profiles []model.InfluencerProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s rows: %w", op, err)
	}
	return profiles, nil
}

func nullableInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullableString(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
