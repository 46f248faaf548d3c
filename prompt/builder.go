// Package prompt composes the instruction pair sent with every extraction
// request. The instruction text is static domain knowledge kept as data: the
// classification and set-aside lookup tables live in tables.go and the prose
// lives in an embedded template, so the builder itself is just date
// arithmetic plus rendering.
package prompt

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
	"time"
)

//go:embed templates/system.tmpl
var templateFS embed.FS

var systemTemplate = template.Must(template.ParseFS(templateFS, "templates/system.tmpl"))

const dateLayout = "2006-01-02"

// DefaultRecentDays is the fallback window for "recent"/"latest" queries
const DefaultRecentDays = 90

// ReferenceDates holds the derived dates a relative-date phrase can resolve to
type ReferenceDates struct {
	Today          time.Time
	OneYearAgo     time.Time
	TwoYearsAgo    time.Time
	FiveYearsAgo   time.Time
	RecentStart    time.Time
	CurrentFYStart time.Time
	CurrentFYEnd   time.Time
	TwoFYAgoStart  time.Time
}

// ComputeReferenceDates derives the reference dates for a given day.
// The federal fiscal year begins October 1 of the prior calendar year, so a
// date in or after October belongs to the fiscal year that starts that month.
func ComputeReferenceDates(today time.Time, recentDays int) ReferenceDates {
	if recentDays <= 0 {
		recentDays = DefaultRecentDays
	}

	r := ReferenceDates{
		Today:        today,
		OneYearAgo:   today.AddDate(0, 0, -365),
		TwoYearsAgo:  today.AddDate(0, 0, -2*365),
		FiveYearsAgo: today.AddDate(0, 0, -5*365),
		RecentStart:  today.AddDate(0, 0, -recentDays),
	}

	year := today.Year()
	if today.Month() >= time.October {
		r.CurrentFYStart = time.Date(year, time.October, 1, 0, 0, 0, 0, time.UTC)
		r.CurrentFYEnd = time.Date(year+1, time.September, 30, 0, 0, 0, 0, time.UTC)
		r.TwoFYAgoStart = time.Date(year-2, time.October, 1, 0, 0, 0, 0, time.UTC)
	} else {
		r.CurrentFYStart = time.Date(year-1, time.October, 1, 0, 0, 0, 0, time.UTC)
		r.CurrentFYEnd = time.Date(year, time.September, 30, 0, 0, 0, 0, time.UTC)
		r.TwoFYAgoStart = time.Date(year-3, time.October, 1, 0, 0, 0, 0, time.UTC)
	}

	return r
}

// systemData is the value set rendered into the system template
type systemData struct {
	TodayStr           string
	FiveYearsAgo       string
	TwoYearsAgo        string
	RecentDate         string
	RecentDays         int
	TwoFYAgoStart      string
	MainTypes          string
	AwardSubtypeList   string
	AwardSubtypeValues string
	SetAsideRows       string
	NAICSTable         string
	PSCServiceTable    string
	PSCProductTable    string
}

// BuildSystemInstruction renders the full extraction instruction for a given
// reference day and recent-window length. Deterministic for fixed inputs.
func BuildSystemInstruction(today time.Time, recentDays int) string {
	if recentDays <= 0 {
		recentDays = DefaultRecentDays
	}
	refs := ComputeReferenceDates(today, recentDays)

	data := systemData{
		TodayStr:           refs.Today.Format(dateLayout),
		FiveYearsAgo:       refs.FiveYearsAgo.Format(dateLayout),
		TwoYearsAgo:        refs.TwoYearsAgo.Format(dateLayout),
		RecentDate:         refs.RecentStart.Format(dateLayout),
		RecentDays:         recentDays,
		TwoFYAgoStart:      refs.TwoFYAgoStart.Format(dateLayout),
		MainTypes:          renderMainSubdoctypes(),
		AwardSubtypeList:   renderAwardSubtypes(),
		AwardSubtypeValues: renderAwardSubtypeValues("solicitations"),
		SetAsideRows:       renderSetAsideTable(),
		NAICSTable:         renderNAICSTable(),
		PSCServiceTable:    renderPSCServiceTable(),
		PSCProductTable:    renderPSCProductTable(),
	}

	var b strings.Builder
	// The template is parsed at init and the data is a plain struct; Execute
	// cannot fail here.
	_ = systemTemplate.Execute(&b, data)
	return b.String()
}

// BuildUserInstruction wraps the raw query. The query flows through as-is;
// content validation belongs to the HTTP layer.
func BuildUserInstruction(query string) string {
	return fmt.Sprintf(`Extract structured query filters from the following natural language question about U.S. federal procurement contracts:

Query: %q

Provide the structured extraction following all the rules specified in the system prompt.`, query)
}
