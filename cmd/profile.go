package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkale/skillforge/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update the local player profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		skillsFlag, _ := cmd.Flags().GetString("skills")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		profile, err := localProfile(ctx, st.Profiles())
		if err != nil {
			return fmt.Errorf("resolve local profile: %w", err)
		}

		if skillsFlag != "" {
			var skills []string
			for _, part := range strings.Split(skillsFlag, ",") {
				if trimmed := strings.TrimSpace(part); trimmed != "" {
					skills = append(skills, trimmed)
				}
			}
			if len(skills) == 0 {
				return fmt.Errorf("no skills given")
			}
			if err := st.Profiles().UpdateSkills(ctx, profile.UserID, skills); err != nil {
				return fmt.Errorf("update skills: %w", err)
			}
			profile.Skills = skills
			fmt.Println("Skills updated.")
		}

		fmt.Printf("Username:  %s\n", profile.Username)
		fmt.Printf("User ID:   %s\n", profile.UserID)
		if profile.DisplayName != "" {
			fmt.Printf("Display:   %s\n", profile.DisplayName)
		}
		if len(profile.Skills) > 0 {
			fmt.Printf("Skills:    %s\n", strings.Join(profile.Skills, ", "))
		} else {
			fmt.Println("Skills:    (none — set with --skills)")
		}
		fmt.Printf("Member since: %s\n", profile.CreatedAt.Format("Jan 02, 2006"))
		return nil
	},
}

func init() {
	profileCmd.Flags().String("skills", "", "Comma-separated skill list to practice (e.g. \"go, sql\")")
}
