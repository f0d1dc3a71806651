package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
)

var (
	faint  = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

func success(msg string) string {
	return green("✓ ") + msg
}

func formatUsageHeader() string {
	return bold(fmt.Sprintf("  %-30s %8s %8s", "TAG", "STORED", "LIVE"))
}

func formatUsageRow(u entity.TagUsage) string {
	row := fmt.Sprintf("  %-30s %8d %8d", u.Tag.Name, u.Stored, u.Live)
	if u.Drifted() {
		return yellow(row + "  drift")
	}
	return row
}

func formatDriftSummary(total, drifted int) string {
	if drifted == 0 {
		return faint(fmt.Sprintf("%d tags, all counts match", total))
	}
	return yellow(fmt.Sprintf("%d of %d tags have drifted; run reconcile-tags to fix", drifted, total))
}

func formatReconcileResult(updated int) string {
	if updated == 0 {
		return success("All tag counts already match")
	}
	return success(fmt.Sprintf("Updated %d tag counts", updated))
}
