package store

import (
	"context"
	"fmt"

	"github.com/mkale/skillforge/ent"
	"github.com/mkale/skillforge/ent/xpledger"
)

// ledgerRepo implements LedgerRepo using the ent client.
type ledgerRepo struct {
	client *ent.Client
}

func (r *ledgerRepo) Get(ctx context.Context, userID string) (*LedgerRecord, error) {
	row, err := r.client.XpLedger.Query().
		Where(xpledger.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query xp ledger: %w", err)
	}

	return &LedgerRecord{
		UserID:          row.UserID,
		TotalXP:         row.TotalXp,
		DailyXP:         row.DailyXp,
		WeeklyXP:        row.WeeklyXp,
		LastDailyReset:  row.LastDailyReset,
		LastWeeklyReset: row.LastWeeklyReset,
	}, nil
}

func (r *ledgerRepo) Save(ctx context.Context, rec *LedgerRecord) error {
	err := r.client.XpLedger.Create().
		SetUserID(rec.UserID).
		SetTotalXp(rec.TotalXP).
		SetDailyXp(rec.DailyXP).
		SetWeeklyXp(rec.WeeklyXP).
		SetLastDailyReset(rec.LastDailyReset).
		SetLastWeeklyReset(rec.LastWeeklyReset).
		OnConflictColumns(xpledger.FieldUserID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert xp ledger: %w", err)
	}
	return nil
}

func (r *ledgerRepo) Totals(ctx context.Context, limit int) ([]LedgerTotal, error) {
	query := r.client.XpLedger.Query().
		Order(ent.Desc(xpledger.FieldTotalXp))

	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query ledger totals: %w", err)
	}

	totals := make([]LedgerTotal, len(rows))
	for i, row := range rows {
		totals[i] = LedgerTotal{UserID: row.UserID, TotalXP: row.TotalXp}
	}
	return totals, nil
}
