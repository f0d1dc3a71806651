package main

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
)

func TestFormatUsageRow(t *testing.T) {
	color.NoColor = true

	ok := entity.TagUsage{Tag: entity.Tag{Name: "golang"}, Stored: 2, Live: 2}
	assert.NotContains(t, formatUsageRow(ok), "drift")

	bad := entity.TagUsage{Tag: entity.Tag{Name: "mongodb"}, Stored: 5, Live: 3}
	row := formatUsageRow(bad)
	assert.Contains(t, row, "mongodb")
	assert.Contains(t, row, "drift")
}

func TestFormatSummaries(t *testing.T) {
	color.NoColor = true

	assert.Equal(t, "3 tags, all counts match", formatDriftSummary(3, 0))
	assert.Contains(t, formatDriftSummary(3, 1), "1 of 3")
	assert.Contains(t, formatReconcileResult(0), "already match")
	assert.Contains(t, formatReconcileResult(4), "Updated 4")
}
