package main

import (
	"encoding/json"
	"fmt"
	"io"

	"placement-match/internal/domain/matching"
	"placement-match/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const app = "matchctl"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           app,
		Short:         "matchctl scores candidates against placement requirements",
		Long:          "matchctl scores and ranks candidates against placement requirements from JSON files, and manages the Postgres schema and course catalog used by the server.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	root.PersistentFlags().Bool("json-log", false, "json format for logging")

	root.AddCommand(newScoreCmd(), newRankCmd(), newMigrateCmd(), newSeedCmd())
	return root
}

func commandLogger(cmd *cobra.Command) (*zap.Logger, error) {
	debug, _ := cmd.Flags().GetBool("debug")
	jsonLog, _ := cmd.Flags().GetBool("json-log")
	return logger.New(jsonLog, debug)
}

// policyFlags registers the weight flags shared by score and rank.
func policyFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("skill-weight", matching.DefaultSkillWeight, "weight of the skills ratio")
	cmd.Flags().Float64("course-weight", matching.DefaultCourseWeight, "weight of the courses ratio")
}

func policyFromFlags(cmd *cobra.Command) (matching.Policy, error) {
	sw, err := cmd.Flags().GetFloat64("skill-weight")
	if err != nil {
		return matching.Policy{}, err
	}
	cw, err := cmd.Flags().GetFloat64("course-weight")
	if err != nil {
		return matching.Policy{}, err
	}
	p := matching.Policy{SkillWeight: sw, CourseWeight: cw}
	if err := p.Validate(); err != nil {
		return matching.Policy{}, err
	}
	return p, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
