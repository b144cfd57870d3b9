package card

import "github.com/m-zajac/ghcard/internal/app"

// Layout dimensions, in internal svg units.
const (
	Width = 450

	paddingTop       = 20
	paddingBottom    = 10
	nameHeight       = 35
	statsHeight      = 135
	languagesHeight  = 45
	languageRowH     = 22
	streakHeight     = 85
	activityHeight   = 120
	contentOffsetX   = 25
	contentWidth     = 400
	columnWidth      = 200
	legendMaxEntries = 6
)

// SectionKind identifies a card block.
type SectionKind int

// Sections in stacking order.
const (
	SectionStats SectionKind = iota
	SectionLanguages
	SectionStreak
	SectionActivity
)

func (k SectionKind) String() string {
	switch k {
	case SectionStats:
		return "stats"
	case SectionLanguages:
		return "languages"
	case SectionStreak:
		return "streak"
	case SectionActivity:
		return "activity"
	}
	return "unknown"
}

// Section is an enabled block placed at vertical offset Y.
type Section struct {
	Kind SectionKind
	Y    int
}

// Document is the card geometry: canvas size and the ordered sections.
type Document struct {
	Width    int
	Height   int
	Header   bool
	Sections []Section
}

// NewLayout decides which sections are rendered and stacks them vertically.
// Height depends only on enabled sections, language count and activity presence.
func NewLayout(stats app.AggregatedStats, opts app.RenderOptions) Document {
	doc := Document{
		Width:  Width,
		Header: opts.ShowName,
	}

	height := paddingTop
	if opts.ShowName {
		height += nameHeight
	}

	if opts.ShowStats {
		doc.Sections = append(doc.Sections, Section{Kind: SectionStats, Y: height})
		height += statsHeight
	}

	if n := len(stats.Languages); opts.ShowLanguages && n > 0 {
		doc.Sections = append(doc.Sections, Section{Kind: SectionLanguages, Y: height})
		height += languagesHeight + languageRowH*((n+1)/2)
	}

	if opts.ShowStreak {
		doc.Sections = append(doc.Sections, Section{Kind: SectionStreak, Y: height})
		height += streakHeight
	}

	if opts.ShowActivity && len(stats.RecentActivity) > 0 {
		doc.Sections = append(doc.Sections, Section{Kind: SectionActivity, Y: height})
		height += activityHeight
	}

	doc.Height = height + paddingBottom

	return doc
}
