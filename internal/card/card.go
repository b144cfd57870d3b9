// Package card renders aggregated github stats as a self-contained svg image.
//
// Rendering is a pure function of its inputs: the same stats and options always
// produce byte-identical output.
package card

import (
	"bytes"
	"fmt"
	"math"
	"regexp"

	"github.com/m-zajac/ghcard/internal/app"
)

// Theme colors, github dark.
const (
	bgColor       = "0d1117"
	borderColor   = "30363d"
	textColor     = "c9d1d9"
	textSecondary = "8b949e"
	rankTrack     = "21262d"
	errorColor    = "f85149"
)

const rankRadius = 18

var hexColor = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// Renderer implements app.CardRenderer.
type Renderer struct{}

var _ app.CardRenderer = Renderer{}

// NewRenderer creates new Renderer instance.
func NewRenderer() Renderer {
	return Renderer{}
}

// Render renders svg card.
func (Renderer) Render(stats app.AggregatedStats, opts app.RenderOptions) ([]byte, error) {
	return Render(stats, opts)
}

// Render lays out enabled sections and renders the svg document.
//
// With opts.IncludePrivate restricted contributions are added to the displayed
// total and to the rank score. Streaks and activity are left as they are, since
// private contributions have no per-day dates.
func Render(stats app.AggregatedStats, opts app.RenderOptions) ([]byte, error) {
	if !hexColor.MatchString(opts.Accent) {
		return nil, fmt.Errorf("invalid accent color %q", opts.Accent)
	}
	accent := opts.Accent

	total := stats.ContributionTotal(opts.IncludePrivate)
	rank := app.ComputeRank(stats, opts.IncludePrivate)
	doc := NewLayout(stats, opts)

	outerWidth, outerHeight := fmt.Sprint(doc.Width), fmt.Sprint(doc.Height)
	if opts.FullWidth {
		outerWidth, outerHeight = "100%", "auto"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %d %d" fill="none">
  <defs>
    <style>
      @import url('https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&amp;display=swap');
      * { font-family: 'Inter', -apple-system, BlinkMacSystemFont, 'Segoe UI', Helvetica, Arial, sans-serif; }
      .title { font-size: 20px; font-weight: 700; fill: #%s; letter-spacing: -0.5px; }
      .section-title { font-size: 11px; font-weight: 700; fill: #%s; letter-spacing: 1.2px; text-transform: uppercase; }
      .stat-value { font-size: 15px; font-weight: 600; fill: #%s; }
      .stat-label { font-size: 12px; fill: #%s; font-weight: 400; }
      .lang-name { font-size: 12px; fill: #%s; font-weight: 500; }
      .lang-pct { font-size: 12px; fill: #%s; font-weight: 400; }
      .streak-val { font-size: 22px; font-weight: 800; fill: #%s; }
      .streak-sub { font-size: 11px; fill: #%s; font-weight: 500; }
      .rank-circle { stroke-width: 4; stroke-linecap: round; }
      .rank-text { font-size: 18px; font-weight: 800; fill: %s; }
      .date-label { font-size: 10px; fill: #%s; font-weight: 500; }
    </style>
  </defs>
  <rect width="%d" height="%d" rx="6" fill="#%s" stroke="#%s" stroke-width="1"/>
`,
		outerWidth, outerHeight, doc.Width, doc.Height,
		accent, textSecondary, textColor, textSecondary, textColor, textSecondary,
		textColor, textSecondary, rank.Color, textSecondary,
		doc.Width, doc.Height, bgColor, borderColor,
	)

	if doc.Header {
		writeHeader(&buf, stats.DisplayName(), rank)
	}

	for _, s := range doc.Sections {
		switch s.Kind {
		case SectionStats:
			writeStats(&buf, stats, s.Y, accent)
		case SectionLanguages:
			writeLanguages(&buf, stats.Languages, s.Y)
		case SectionStreak:
			writeStreak(&buf, stats.Streak, total, s.Y, accent)
		case SectionActivity:
			writeActivity(&buf, stats.RecentActivity, s.Y, accent)
		}
	}

	buf.WriteString("</svg>")

	return buf.Bytes(), nil
}

// writeHeader renders display name and the rank badge: a ring filled up to the
// tier's percentile.
func writeHeader(buf *bytes.Buffer, name string, rank app.RankResult) {
	dash := 2 * math.Pi * rankRadius * float64(rank.Percentile) / 100

	fmt.Fprintf(buf, `  <g transform="translate(%d, 35)">
    <text class="card title">%s</text>
  </g>
  <g transform="translate(400, 30)">
    <circle cx="0" cy="0" r="%d" fill="none" stroke="#%s" stroke-width="3"/>
    <circle cx="0" cy="0" r="%d" fill="none" stroke="%s" stroke-dasharray="%s 1000" transform="rotate(-90)" class="rank-circle"/>
    <text x="0" y="5" text-anchor="middle" class="card rank-text">%s</text>
  </g>
`, contentOffsetX, escape(name), rankRadius, rankTrack, rankRadius, rank.Color, formatCoord(dash), escape(rank.Level))
}

// RenderError renders a fixed size card showing the error message.
func RenderError(message string) []byte {
	return []byte(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="495" height="100" viewBox="0 0 495 100">
  <rect x="0.5" y="0.5" width="494" height="99" rx="6" fill="#%s" stroke="#%s"/>
  <text x="247" y="55" text-anchor="middle" font-family="sans-serif" font-size="14" fill="#%s">%s</text>
</svg>`, bgColor, errorColor, errorColor, escape(message)))
}
