package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"influencer-srv/internal/model"
	"influencer-srv/internal/user/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const userColumns = `
	id, user_type, email, password, full_name,
	niche, categories, languages, social_accounts,
	company_name, website, industry,
	fb_access_token, is_fb_graph_connected,
	is_deleted, is_blocked, created_at, updated_at
`

const uniqueViolation = "23505"

// Create inserts a new account. The email is unique per user_type.
func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.User, error) {
	u := opt.User
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	accountsJSON, err := json.Marshal(u.SocialAccounts)
	if err != nil {
		return model.User{}, fmt.Errorf("Create marshal social accounts: %w", err)
	}

	query := `
		INSERT INTO influencers.users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING ` + userColumns

	row := r.db.QueryRowContext(ctx, query,
		u.ID, u.UserType, u.Email, u.Password, u.FullName,
		u.Niche, pq.Array(u.Categories), pq.Array(u.Languages), accountsJSON,
		u.CompanyName, u.Website, u.Industry,
		nullableString(u.FBAccessToken), u.IsFBGraphConnected,
		u.IsDeleted, u.IsBlocked, u.CreatedAt, u.UpdatedAt,
	)

	saved, err := scanUser(row)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return model.User{}, repository.ErrDuplicateEmail
		}
		return model.User{}, fmt.Errorf("Create: %w", err)
	}
	return saved, nil
}

// GetByEmail returns a non-deleted account by email, regardless of type.
func (r *implRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM influencers.users
		WHERE email = $1 AND is_deleted = false
		LIMIT 1
	`

	u, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		return model.User{}, fmt.Errorf("GetByEmail: %w", err)
	}
	return u, nil
}

// GetByEmailAndType returns the non-deleted account matching a login pair.
func (r *implRepository) GetByEmailAndType(ctx context.Context, opt repository.GetByEmailAndTypeOptions) (model.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM influencers.users
		WHERE email = $1 AND user_type = $2 AND is_deleted = false
	`

	u, err := scanUser(r.db.QueryRowContext(ctx, query, opt.Email, opt.UserType))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		return model.User{}, fmt.Errorf("GetByEmailAndType: %w", err)
	}
	return u, nil
}

// GetByID returns a non-deleted account by id.
func (r *implRepository) GetByID(ctx context.Context, id string) (model.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM influencers.users
		WHERE id = $1 AND is_deleted = false
	`

	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		return model.User{}, fmt.Errorf("GetByID: %w", err)
	}
	return u, nil
}

// CountByType counts non-deleted accounts of one type.
func (r *implRepository) CountByType(ctx context.Context, userType model.UserType) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM influencers.users
		WHERE user_type = $1 AND is_deleted = false
	`

	var count int
	if err := r.db.QueryRowContext(ctx, query, userType).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountByType: %w", err)
	}
	return count, nil
}

// UpdateFBToken stores the exchanged token and flips the connected flag.
func (r *implRepository) UpdateFBToken(ctx context.Context, opt repository.UpdateFBTokenOptions) error {
	query := `
		UPDATE influencers.users
		SET fb_access_token = $2, is_fb_graph_connected = true, updated_at = $3
		WHERE id = $1 AND is_deleted = false
	`

	res, err := r.db.ExecContext(ctx, query, opt.UserID, opt.AccessToken, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("UpdateFBToken: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("UpdateFBToken rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanUser(row *sql.Row) (model.User, error) {
	var (
		u            model.User
		categories   pq.StringArray
		languages    pq.StringArray
		accountsJSON []byte
		fbToken      sql.NullString
	)

	err := row.Scan(
		&u.ID, &u.UserType, &u.Email, &u.Password, &u.FullName,
		&u.Niche, &categories, &languages, &accountsJSON,
		&u.CompanyName, &u.Website, &u.Industry,
		&fbToken, &u.IsFBGraphConnected,
		&u.IsDeleted, &u.IsBlocked, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return model.User{}, err
	}

	u.Categories = categories
	u.Languages = languages
	if fbToken.Valid {
		u.FBAccessToken = fbToken.String
	}
	if len(accountsJSON) > 0 {
		if err := json.Unmarshal(accountsJSON, &u.SocialAccounts); err != nil {
			return model.User{}, fmt.Errorf("unmarshal social accounts: %w", err)
		}
	}
	return u, nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
