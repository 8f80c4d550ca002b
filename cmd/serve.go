package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mkale/skillforge/internal/collab"
	"github.com/mkale/skillforge/internal/discuss"
	"github.com/mkale/skillforge/internal/leaderboard"
	"github.com/mkale/skillforge/internal/ledger"
	"github.com/mkale/skillforge/internal/server"
	"github.com/mkale/skillforge/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the SkillForge community API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Local .env is optional; real deployments set the environment.
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "warning: loading .env: %v\n", err)
		}

		addr, _ := cmd.Flags().GetString("addr")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		events := st.Events()
		ledgerSvc := ledger.NewService(events, events, st.Ledgers())
		discussSvc := discuss.NewService(st.Discussions())
		board := leaderboard.NewService(st.Ledgers(), events)
		collabSvc := collab.NewService(st.Collab(), collab.NewNetDialer(0), relayEndpoints())

		log := server.NewLogger()
		srv := server.New(log, st.Profiles(), ledgerSvc, discussSvc, board, collabSvc)
		return srv.Run(cmd.Context(), addr)
	},
}

// relayEndpoints returns the collab relay list, from SKILLFORGE_RELAYS when
// set, otherwise the built-in defaults.
func relayEndpoints() []string {
	raw := os.Getenv("SKILLFORGE_RELAYS")
	if raw == "" {
		return collab.DefaultRelayEndpoints
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return collab.DefaultRelayEndpoints
	}
	return out
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address for the HTTP API")
}
