package cmd

import (
	"context"
	"fmt"
	"os"
	"os/user"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mkale/skillforge/internal/app"
	"github.com/mkale/skillforge/internal/ledger"
	"github.com/mkale/skillforge/internal/llm"
	"github.com/mkale/skillforge/internal/quizgen"
	"github.com/mkale/skillforge/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	profile, err := localProfile(ctx, st.Profiles())
	if err != nil {
		return fmt.Errorf("resolve local profile: %w", err)
	}

	events := st.Events()
	opts := app.Options{
		Ledger:   ledger.NewService(events, events, st.Ledgers()),
		Profiles: st.Profiles(),
		UserID:   profile.UserID,
		Username: profile.Username,
		Skills:   profile.Skills,
	}

	provider, err := llm.NewProviderFromEnv(ctx, events)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Challenges will use the built-in question bank.")
		opts.Source = quizgen.NewSource(nil)
	} else {
		opts.Source = quizgen.NewSource(quizgen.New(provider, quizgen.DefaultConfig()))
	}

	return app.Run(opts)
}

// localProfile returns the machine-local player profile, creating it on
// first run. SKILLFORGE_USER overrides the profile username.
func localProfile(ctx context.Context, profiles store.ProfileRepo) (*store.ProfileRecord, error) {
	username := os.Getenv("SKILLFORGE_USER")
	if username == "" {
		if u, err := user.Current(); err == nil && u.Username != "" {
			username = u.Username
		} else {
			username = "player"
		}
	}

	existing, err := profiles.ByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := profiles.TouchLastSeen(ctx, existing.UserID); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to touch profile: %v\n", err)
		}
		return existing, nil
	}

	rec := &store.ProfileRecord{
		UserID:   uuid.NewString(),
		Username: username,
	}
	if err := profiles.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}
