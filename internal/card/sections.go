package card

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/m-zajac/ghcard/internal/app"
)

const (
	barHeight       = 8
	sparklineHeight = 60
	statRowHeight   = 40
)

type metric struct {
	label string
	value int
	glyph glyph
}

// writeStats renders the metrics grid: 2 columns, 3 rows.
func writeStats(buf *bytes.Buffer, stats app.AggregatedStats, y int, accent string) {
	metrics := []metric{
		{label: "Total Stars", value: stats.TotalStars, glyph: glyphStars},
		{label: "Commits", value: stats.Totals.Commits, glyph: glyphCommit},
		{label: "Pull Requests", value: stats.Totals.PullRequests, glyph: glyphPullRequest},
		{label: "Issues", value: stats.Totals.Issues, glyph: glyphIssue},
		{label: "Repositories", value: stats.PublicRepos, glyph: glyphRepo},
		{label: "Followers", value: stats.Followers, glyph: glyphFollowers},
	}

	fmt.Fprintf(buf, `  <g transform="translate(%d, %d)">`, contentOffsetX, y)
	for i, m := range metrics {
		x := (i % 2) * columnWidth
		rowY := (i / 2) * statRowHeight
		fmt.Fprintf(buf, "\n"+`    <g transform="translate(%d, %d)">`, x, rowY)
		fmt.Fprintf(buf, "\n      %s", m.glyph("#"+accent))
		fmt.Fprintf(buf, "\n"+`      <text x="25" y="11" class="stat-value">%s</text>`, formatNumber(m.value))
		fmt.Fprintf(buf, "\n"+`      <text x="25" y="27" class="stat-label">%s</text>`, m.label)
		buf.WriteString("\n    </g>")
	}
	buf.WriteString("\n  </g>\n")
}

// writeLanguages renders the proportional bar and a legend of at most 6 entries.
func writeLanguages(buf *bytes.Buffer, languages []app.LanguageShare, y int) {
	fmt.Fprintf(buf, `  <g transform="translate(%d, %d)">
    <text class="card section-title">Top Languages</text>
    <g transform="translate(0, 15)">
      <mask id="bar-mask">
        <rect width="%d" height="%d" rx="4" fill="white"/>
      </mask>
      <g mask="url(#bar-mask)">`, contentOffsetX, y, contentWidth, barHeight)

	var x float64
	for _, l := range languages {
		w := l.Percentage / 100 * contentWidth
		if w < 0 {
			w = 0
		}
		fmt.Fprintf(buf, `<rect x="%s" width="%s" height="%d" fill="%s"/>`,
			formatCoord(x), formatCoord(w), barHeight, escape(l.Color))
		x += w
	}

	buf.WriteString(`
      </g>
    </g>
    <g transform="translate(0, 35)">`)

	legend := languages
	if len(legend) > legendMaxEntries {
		legend = legend[:legendMaxEntries]
	}
	for i, l := range legend {
		fmt.Fprintf(buf, `
      <g transform="translate(%d, %d)">
        <circle cx="5" cy="5" r="5" fill="%s"/>
        <text x="18" y="9" class="lang-name">%s</text>
        <text x="140" y="9" class="lang-pct" text-anchor="end">%s</text>
      </g>`, (i%2)*columnWidth, (i/2)*languageRowH, escape(l.Color), escape(l.Name), formatPercentage(l.Percentage))
	}

	buf.WriteString(`
    </g>
  </g>
`)
}

// writeStreak renders current streak, longest streak and total contributions.
func writeStreak(buf *bytes.Buffer, streak app.StreakFigures, total int, y int, accent string) {
	fmt.Fprintf(buf, `  <g transform="translate(%d, %d)">
    <text class="card section-title">Contribution Streak</text>
    <g transform="translate(0, 30)">
      <g>
        <text class="streak-val" fill="#%s">%d <tspan font-size="12" font-weight="400" fill="#768390">days</tspan></text>
        <text y="20" class="streak-sub">Current Streak</text>
      </g>
      <g transform="translate(130, 0)">
        <text class="streak-val">%d <tspan font-size="12" font-weight="400" fill="#768390">days</tspan></text>
        <text y="20" class="streak-sub">Longest Streak</text>
      </g>
      <g transform="translate(260, 0)">
        <text class="streak-val">%s</text>
        <text y="20" class="streak-sub">Total Contributions</text>
      </g>
    </g>
  </g>
`, contentOffsetX, y, accent, streak.Current, streak.Longest, formatNumber(total))
}

// writeActivity renders the sparkline of recent daily contributions.
// Renders nothing for an empty series.
func writeActivity(buf *bytes.Buffer, activity []int, y int, accent string) {
	if len(activity) == 0 {
		return
	}

	points := sparklinePoints(activity, contentWidth, sparklineHeight)
	area := fmt.Sprintf("M0,%d L%s L%d,%d Z", sparklineHeight, strings.Join(points, " L"), contentWidth, sparklineHeight)
	line := "M" + strings.Join(points, " L")
	first := strings.Split(points[0], ",")
	last := strings.Split(points[len(points)-1], ",")

	fmt.Fprintf(buf, `  <g transform="translate(%d, %d)">
    <text class="card section-title">Contribution Activity (Last 30 Days)</text>
    <g transform="translate(0, 20)">
      <path d="%s" fill="#%s" fill-opacity="0.1"/>
      <path d="%s" fill="none" stroke="#%s" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"/>
      <circle cx="%s" cy="%s" r="3" fill="#%s"/>
      <circle cx="%s" cy="%s" r="3" fill="#%s"/>
      <text x="0" y="%d" class="date-label">30 days ago</text>
      <text x="%d" y="%d" text-anchor="end" class="date-label">Today</text>
    </g>
  </g>
`, contentOffsetX, y,
		area, accent,
		line, accent,
		first[0], first[1], accent,
		last[0], last[1], accent,
		sparklineHeight+15,
		contentWidth, sparklineHeight+15)
}

// sparklinePoints returns "x,y" pairs with x evenly spaced over width and y scaled
// against the series maximum. The denominator is at least 1.
func sparklinePoints(values []int, width, height int) []string {
	peak := 1
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}

	points := make([]string, 0, len(values))
	for i, v := range values {
		var x float64
		if len(values) > 1 {
			x = float64(i) / float64(len(values)-1) * float64(width)
		}
		yPos := float64(height) - float64(v)/float64(peak)*float64(height)
		points = append(points, formatFixed1(x)+","+formatFixed1(yPos))
	}

	return points
}

func formatFixed1(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
