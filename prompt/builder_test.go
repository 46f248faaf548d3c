package prompt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeReferenceDatesFiscalYearBeforeOctober(t *testing.T) {
	refs := ComputeReferenceDates(date(2025, time.March, 15), DefaultRecentDays)

	assert.Equal(t, date(2024, time.October, 1), refs.CurrentFYStart)
	assert.Equal(t, date(2025, time.September, 30), refs.CurrentFYEnd)
	assert.Equal(t, date(2022, time.October, 1), refs.TwoFYAgoStart)
}

func TestComputeReferenceDatesFiscalYearFromOctober(t *testing.T) {
	refs := ComputeReferenceDates(date(2025, time.November, 1), DefaultRecentDays)

	assert.Equal(t, date(2025, time.October, 1), refs.CurrentFYStart)
	assert.Equal(t, date(2026, time.September, 30), refs.CurrentFYEnd)
	assert.Equal(t, date(2023, time.October, 1), refs.TwoFYAgoStart)
}

func TestComputeReferenceDatesRelativeWindows(t *testing.T) {
	today := date(2025, time.March, 15)
	refs := ComputeReferenceDates(today, 90)

	assert.Equal(t, today.AddDate(0, 0, -365), refs.OneYearAgo)
	assert.Equal(t, today.AddDate(0, 0, -730), refs.TwoYearsAgo)
	assert.Equal(t, today.AddDate(0, 0, -1825), refs.FiveYearsAgo)
	assert.Equal(t, date(2024, time.December, 15), refs.RecentStart)
}

func TestComputeReferenceDatesDefaultsRecentWindow(t *testing.T) {
	today := date(2025, time.March, 15)
	refs := ComputeReferenceDates(today, 0)

	assert.Equal(t, today.AddDate(0, 0, -DefaultRecentDays), refs.RecentStart)
}

func TestBuildSystemInstructionIsDeterministic(t *testing.T) {
	today := date(2025, time.March, 15)

	first := BuildSystemInstruction(today, 90)
	second := BuildSystemInstruction(today, 90)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestBuildSystemInstructionContainsReferenceDates(t *testing.T) {
	instruction := BuildSystemInstruction(date(2025, time.March, 15), 90)

	assert.Contains(t, instruction, "2025-03-15")
	assert.Contains(t, instruction, "2024-10-01") // current fiscal year start
	assert.Contains(t, instruction, "2024-12-15") // recent window start
	assert.Contains(t, instruction, "2022-10-01") // two fiscal years ago
}

func TestBuildSystemInstructionContainsLookupTables(t *testing.T) {
	instruction := BuildSystemInstruction(date(2025, time.March, 15), 90)

	// One representative row per table is enough to catch a rendering break.
	assert.Contains(t, instruction, "Professional, Scientific, and Technical Services")
	assert.Contains(t, instruction, "Research and Development (R&D)")
	assert.Contains(t, instruction, "Weapons")
	assert.Contains(t, instruction, "Woman Owned Small Business")
	assert.Contains(t, instruction, "Delivery/Task Order")
	assert.Contains(t, instruction, "group_operator_between_groups")
}

func TestBuildSystemInstructionRecentDaysFlowThrough(t *testing.T) {
	instruction := BuildSystemInstruction(date(2025, time.March, 15), 45)

	assert.Contains(t, instruction, "45")
	assert.Contains(t, instruction, "2025-01-29")
}

func TestBuildUserInstructionEmbedsQuery(t *testing.T) {
	out := BuildUserInstruction(`show "large" IT contracts`)

	assert.True(t, strings.Contains(out, `large`))
	assert.Contains(t, out, "U.S. federal procurement contracts")
}
