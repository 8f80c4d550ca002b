package store

import (
	"context"
	"fmt"
	"time"

	"github.com/mkale/skillforge/ent"
	"github.com/mkale/skillforge/ent/profile"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Create(ctx context.Context, rec *ProfileRecord) error {
	_, err := r.client.Profile.Create().
		SetUserID(rec.UserID).
		SetUsername(rec.Username).
		SetDisplayName(rec.DisplayName).
		SetPasswordHash(rec.PasswordHash).
		SetSkills(rec.Skills).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

func (r *profileRepo) ByUsername(ctx context.Context, username string) (*ProfileRecord, error) {
	row, err := r.client.Profile.Query().
		Where(profile.Username(username)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile by username: %w", err)
	}
	return entProfileToRecord(row), nil
}

func (r *profileRepo) ByID(ctx context.Context, userID string) (*ProfileRecord, error) {
	row, err := r.client.Profile.Query().
		Where(profile.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile by id: %w", err)
	}
	return entProfileToRecord(row), nil
}

func (r *profileRepo) UpdateSkills(ctx context.Context, userID string, skills []string) error {
	_, err := r.client.Profile.Update().
		Where(profile.UserID(userID)).
		SetSkills(skills).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update profile skills: %w", err)
	}
	return nil
}

func (r *profileRepo) TouchLastSeen(ctx context.Context, userID string) error {
	_, err := r.client.Profile.Update().
		Where(profile.UserID(userID)).
		SetLastSeen(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("touch profile: %w", err)
	}
	return nil
}

func (r *profileRepo) All(ctx context.Context) ([]ProfileRecord, error) {
	rows, err := r.client.Profile.Query().
		Order(ent.Asc(profile.FieldUsername)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query profiles: %w", err)
	}

	records := make([]ProfileRecord, len(rows))
	for i, row := range rows {
		records[i] = *entProfileToRecord(row)
	}
	return records, nil
}

func entProfileToRecord(row *ent.Profile) *ProfileRecord {
	return &ProfileRecord{
		UserID:       row.UserID,
		Username:     row.Username,
		DisplayName:  row.DisplayName,
		PasswordHash: row.PasswordHash,
		Skills:       row.Skills,
		CreatedAt:    row.CreatedAt,
		LastSeen:     row.LastSeen,
	}
}
