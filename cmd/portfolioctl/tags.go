package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var driftOnly bool

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List tags with stored and live usage counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := svc.tagUsecase.UsageReport(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to build usage report: %w", err)
		}
		if len(report) == 0 {
			fmt.Println("No tags found.")
			return nil
		}

		fmt.Println(formatUsageHeader())
		drifted := 0
		for _, u := range report {
			if u.Drifted() {
				drifted++
			} else if driftOnly {
				continue
			}
			fmt.Println(formatUsageRow(u))
		}
		fmt.Println(formatDriftSummary(len(report), drifted))
		return nil
	},
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile-tags",
	Short: "Recount every tag from live posts and projects",
	Long:  `Rewrites each stored tag counter that disagrees with the number of live posts and projects referencing it. Safe to run repeatedly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		updated, err := svc.tagUsecase.RecountTags(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to reconcile tags: %w", err)
		}
		fmt.Println(formatReconcileResult(updated))
		return nil
	},
}

func init() {
	tagsCmd.Flags().BoolVar(&driftOnly, "drift", false, "only show tags whose stored count is wrong")
}
