package main

import (
	"fmt"

	"placement-match/internal/datafile"
	"placement-match/internal/delivery/http/dto"
	"placement-match/internal/domain/matching"

	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	var candidatePath, requirementPath string

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score one candidate against one requirement",
		Long:  "Reads a candidate JSON file and a requirement JSON file and prints the match result.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			policy, err := policyFromFlags(cmd)
			if err != nil {
				return err
			}

			c, err := datafile.LoadCandidate(candidatePath)
			if err != nil {
				return fmt.Errorf("failed to load candidate: %w", err)
			}
			r, err := datafile.LoadRequirement(requirementPath)
			if err != nil {
				return fmt.Errorf("failed to load requirement: %w", err)
			}

			res := matching.NewScorer(policy).Score(c, r)
			return writeJSON(cmd.OutOrStdout(), dto.NewMatchResultResponse(res))
		},
	}

	cmd.Flags().StringVarP(&candidatePath, "candidate", "c", "", "Path to candidate JSON file (required)")
	cmd.Flags().StringVarP(&requirementPath, "requirement", "r", "", "Path to requirement JSON file (required)")
	policyFlags(cmd)

	if err := cmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}
	if err := cmd.MarkFlagRequired("requirement"); err != nil {
		panic(fmt.Sprintf("failed to mark requirement flag as required: %v", err))
	}
	return cmd
}
