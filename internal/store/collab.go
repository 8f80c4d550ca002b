package store

import (
	"context"
	"fmt"
	"time"

	"github.com/mkale/skillforge/ent"
	"github.com/mkale/skillforge/ent/collabparticipant"
	"github.com/mkale/skillforge/ent/collabsession"
)

// collabRepo implements CollabRepo using the ent client.
type collabRepo struct {
	client *ent.Client
}

func (r *collabRepo) CreateSession(ctx context.Context, rec *CollabSessionRecord) error {
	row, err := r.client.CollabSession.Create().
		SetSessionID(rec.SessionID).
		SetHostUserID(rec.HostUserID).
		SetTitle(rec.Title).
		SetLanguage(rec.Language).
		SetRelayURL(rec.RelayURL).
		SetActive(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create collab session: %w", err)
	}
	rec.Active = true
	rec.CreatedAt = row.CreatedAt
	return nil
}

func (r *collabRepo) EndSession(ctx context.Context, sessionID string) error {
	_, err := r.client.CollabSession.Update().
		Where(collabsession.SessionID(sessionID)).
		SetActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("end collab session: %w", err)
	}
	return nil
}

func (r *collabRepo) SetRelayURL(ctx context.Context, sessionID, relayURL string) error {
	_, err := r.client.CollabSession.Update().
		Where(collabsession.SessionID(sessionID)).
		SetRelayURL(relayURL).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set relay url: %w", err)
	}
	return nil
}

func (r *collabRepo) Join(ctx context.Context, sessionID, userID string) error {
	err := r.client.CollabParticipant.Create().
		SetSessionID(sessionID).
		SetUserID(userID).
		SetJoinedAt(time.Now()).
		OnConflictColumns(collabparticipant.FieldSessionID, collabparticipant.FieldUserID).
		UpdateNewValues().
		ClearLeftAt().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("join collab session: %w", err)
	}
	return nil
}

func (r *collabRepo) Leave(ctx context.Context, sessionID, userID string) error {
	_, err := r.client.CollabParticipant.Update().
		Where(
			collabparticipant.SessionID(sessionID),
			collabparticipant.UserID(userID),
		).
		SetLeftAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("leave collab session: %w", err)
	}
	return nil
}

func (r *collabRepo) ActiveSessions(ctx context.Context) ([]CollabSessionRecord, error) {
	rows, err := r.client.CollabSession.Query().
		Where(collabsession.Active(true)).
		Order(ent.Desc(collabsession.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query active sessions: %w", err)
	}

	records := make([]CollabSessionRecord, len(rows))
	for i, row := range rows {
		records[i] = CollabSessionRecord{
			SessionID:  row.SessionID,
			HostUserID: row.HostUserID,
			Title:      row.Title,
			Language:   row.Language,
			RelayURL:   row.RelayURL,
			Active:     row.Active,
			CreatedAt:  row.CreatedAt,
		}
	}
	return records, nil
}

func (r *collabRepo) Participants(ctx context.Context, sessionID string) ([]CollabParticipantRecord, error) {
	rows, err := r.client.CollabParticipant.Query().
		Where(collabparticipant.SessionID(sessionID)).
		Order(ent.Asc(collabparticipant.FieldJoinedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query participants: %w", err)
	}

	records := make([]CollabParticipantRecord, len(rows))
	for i, row := range rows {
		records[i] = CollabParticipantRecord{
			SessionID: row.SessionID,
			UserID:    row.UserID,
			JoinedAt:  row.JoinedAt,
			LeftAt:    row.LeftAt,
		}
	}
	return records, nil
}
