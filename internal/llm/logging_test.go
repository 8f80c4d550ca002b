package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mkale/skillforge/internal/store"
)

type captureEventLog struct {
	events []store.LLMRequestEventData
}

func (c *captureEventLog) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	c.events = append(c.events, data)
	return nil
}

func TestWithLogging_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 7, TotalTokens: 19},
	})
	log := &captureEventLog{}
	p := WithLogging(mock, "mock", log)

	ctx := WithPurpose(context.Background(), "quiz-gen")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(log.events) != 1 {
		t.Fatalf("expected 1 logged event, got %d", len(log.events))
	}
	ev := log.events[0]
	if !ev.Success {
		t.Error("expected success=true")
	}
	if ev.Provider != "mock" || ev.Purpose != "quiz-gen" {
		t.Errorf("event = %+v, want provider=mock purpose=quiz-gen", ev)
	}
	if ev.InputTokens != 12 || ev.OutputTokens != 7 {
		t.Errorf("tokens = %d/%d, want 12/7", ev.InputTokens, ev.OutputTokens)
	}
}

func TestWithLogging_RecordsFailure(t *testing.T) {
	mock := NewMockProvider() // empty queue fails
	log := &captureEventLog{}
	p := WithLogging(mock, "mock", log)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	if len(log.events) != 1 {
		t.Fatalf("expected 1 logged event, got %d", len(log.events))
	}
	ev := log.events[0]
	if ev.Success {
		t.Error("expected success=false")
	}
	if ev.ErrorMessage == "" {
		t.Error("expected error message to be recorded")
	}
}
