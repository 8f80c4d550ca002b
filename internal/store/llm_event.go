package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mkale/skillforge/ent"
	"github.com/mkale/skillforge/ent/llmrequestevent"
)

// LLMEventRecord is a persisted LLM API call.
type LLMEventRecord struct {
	ID           int
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	Sequence     int64
	Timestamp    time.Time
}

// LLMUsageStat aggregates token usage for one purpose label.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

func (r *EventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save llm request event: %w", err)
	}
	return nil
}

// QueryLLMEvents returns LLM call events, newest first.
func (r *EventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error) {
	query := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(llmrequestevent.SequenceGT(opts.After))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}

	records := make([]LLMEventRecord, len(events))
	for i, e := range events {
		records[i] = LLMEventRecord{
			ID:           e.ID,
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
			Sequence:     e.Sequence,
			Timestamp:    e.Timestamp,
		}
	}
	return records, nil
}

// LLMUsageByPurpose aggregates token usage per purpose label.
func (r *EventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}

	byPurpose := make(map[string]*LLMUsageStat)
	latencySums := make(map[string]int64)
	for _, e := range events {
		st, ok := byPurpose[e.Purpose]
		if !ok {
			st = &LLMUsageStat{Purpose: e.Purpose}
			byPurpose[e.Purpose] = st
		}
		st.Calls++
		st.InputTokens += e.InputTokens
		st.OutputTokens += e.OutputTokens
		latencySums[e.Purpose] += e.LatencyMs
	}

	stats := make([]LLMUsageStat, 0, len(byPurpose))
	for purpose, st := range byPurpose {
		if st.Calls > 0 {
			st.AvgLatencyMs = latencySums[purpose] / int64(st.Calls)
		}
		stats = append(stats, *st)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Purpose < stats[j].Purpose })
	return stats, nil
}
