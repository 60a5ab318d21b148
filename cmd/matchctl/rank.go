package main

import (
	"errors"
	"fmt"

	"placement-match/internal/datafile"
	"placement-match/internal/delivery/http/dto"
	"placement-match/internal/domain/matching"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type rankedEntry struct {
	ID     uuid.UUID               `json:"id"`
	Name   string                  `json:"name"`
	Result dto.MatchResultResponse `json:"result"`
}

type recommendedCourse struct {
	Name   string   `json:"name"`
	URL    string   `json:"url,omitempty"`
	Covers []string `json:"covers"`
}

type rankOutput struct {
	Results []rankedEntry          `json:"results"`
	Stats   dto.StatisticsResponse `json:"stats"`
	Courses []recommendedCourse    `json:"courses,omitempty"`
}

func newRankCmd() *cobra.Command {
	var (
		datasetPath     string
		requirementID   string
		candidateID     string
		minMatch        float64
		qualifierFilter bool
		recommend       bool
	)

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank candidates for a requirement, or requirements for a candidate",
		Long:  "Ranks inside an offline JSON dataset. Pass --requirement to rank candidates or --candidate to rank requirements.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if (requirementID == "") == (candidateID == "") {
				return errors.New("exactly one of --requirement or --candidate is required")
			}

			policy, err := policyFromFlags(cmd)
			if err != nil {
				return err
			}
			d, err := datafile.LoadDataset(datasetPath)
			if err != nil {
				return fmt.Errorf("failed to load dataset: %w", err)
			}

			agg := matching.NewAggregator(matching.NewScorer(policy), matching.DefaultThresholds())
			opts := matching.RankOptions{ApplyQualifierFilter: qualifierFilter}
			if cmd.Flags().Changed("min-match") {
				if !matching.InPercentRange(minMatch) {
					return fmt.Errorf("invalid --min-match %v: must be between 0 and 100", minMatch)
				}
				opts.MinMatch = &minMatch
			}

			var out rankOutput
			if requirementID != "" {
				id, err := uuid.Parse(requirementID)
				if err != nil {
					return fmt.Errorf("invalid requirement id: %w", err)
				}
				ranked, err := agg.RankCandidatesByID(d, id, opts)
				if err != nil {
					return fmt.Errorf("requirement %s: %w", id, err)
				}
				out.Results = make([]rankedEntry, 0, len(ranked))
				for _, m := range ranked {
					out.Results = append(out.Results, rankedEntry{ID: m.Candidate.ID, Name: m.Candidate.Name, Result: dto.NewMatchResultResponse(m.Result)})
				}
				out.Stats = statsResponse(matching.AggregateStatistics(ranked))
			} else {
				id, err := uuid.Parse(candidateID)
				if err != nil {
					return fmt.Errorf("invalid candidate id: %w", err)
				}
				ranked, err := agg.RankRequirementsByID(d, id, opts)
				if err != nil {
					return fmt.Errorf("candidate %s: %w", id, err)
				}
				out.Results = make([]rankedEntry, 0, len(ranked))
				for _, m := range ranked {
					out.Results = append(out.Results, rankedEntry{ID: m.Requirement.ID, Name: m.Requirement.Title, Result: dto.NewMatchResultResponse(m.Result)})
				}
				out.Stats = statsResponse(matching.AggregateStatistics(ranked))

				if recommend {
					missing := matching.MissingAcross(ranked)
					out.Courses = make([]recommendedCourse, 0)
					for _, o := range matching.RecommendForGaps(missing, d.Catalog) {
						out.Courses = append(out.Courses, recommendedCourse{
							Name:   o.Name,
							URL:    o.URL,
							Covers: matching.GapCoverage(o, missing).Sorted(),
						})
					}
				}
			}

			return writeJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVar(&datasetPath, "dataset", "", "Path to dataset JSON file (required)")
	cmd.Flags().StringVar(&requirementID, "requirement", "", "Requirement id to rank candidates for")
	cmd.Flags().StringVar(&candidateID, "candidate", "", "Candidate id to rank requirements for")
	cmd.Flags().Float64Var(&minMatch, "min-match", 0, "display threshold override (default: configured threshold)")
	cmd.Flags().BoolVar(&qualifierFilter, "qualifier-filter", true, "drop entries failing the minimum qualifier")
	cmd.Flags().BoolVar(&recommend, "recommend", false, "with --candidate, also suggest catalog courses for missing skills")
	policyFlags(cmd)

	if err := cmd.MarkFlagRequired("dataset"); err != nil {
		panic(fmt.Sprintf("failed to mark dataset flag as required: %v", err))
	}
	return cmd
}

func statsResponse(st matching.Statistics) dto.StatisticsResponse {
	return dto.StatisticsResponse{
		TotalCandidates:    st.Count,
		EligibleCandidates: st.EligibleCount,
		AverageMatch:       st.AverageMatchPercentage,
	}
}
