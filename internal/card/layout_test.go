package card

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/m-zajac/ghcard/internal/app"
	"github.com/stretchr/testify/assert"
)

func TestNewLayout(t *testing.T) {
	t.Parallel()

	threeLanguages := []app.LanguageShare{
		{Name: "Go", Percentage: 60},
		{Name: "C", Percentage: 30},
		{Name: "Lua", Percentage: 10},
	}

	tests := []struct {
		name  string
		stats app.AggregatedStats
		opts  app.RenderOptions
		want  Document
	}{
		{
			name: "stats and streak only",
			stats: app.AggregatedStats{
				Languages:      threeLanguages,
				RecentActivity: []int{1, 2},
			},
			opts: app.RenderOptions{ShowStats: true, ShowStreak: true},
			want: Document{
				Width:  Width,
				Height: 250,
				Sections: []Section{
					{Kind: SectionStats, Y: 20},
					{Kind: SectionStreak, Y: 155},
				},
			},
		},
		{
			name: "everything enabled",
			stats: app.AggregatedStats{
				Languages:      threeLanguages,
				RecentActivity: []int{1, 2},
			},
			opts: app.DefaultRenderOptions(),
			want: Document{
				Width:  Width,
				Height: 494,
				Header: true,
				Sections: []Section{
					{Kind: SectionStats, Y: 55},
					{Kind: SectionLanguages, Y: 190},
					{Kind: SectionStreak, Y: 279},
					{Kind: SectionActivity, Y: 364},
				},
			},
		},
		{
			name:  "no languages and no activity",
			stats: app.AggregatedStats{},
			opts:  app.DefaultRenderOptions(),
			want: Document{
				Width:  Width,
				Height: 285,
				Header: true,
				Sections: []Section{
					{Kind: SectionStats, Y: 55},
					{Kind: SectionStreak, Y: 190},
				},
			},
		},
		{
			name: "eight languages take four rows",
			stats: app.AggregatedStats{
				Languages: make([]app.LanguageShare, 8),
			},
			opts: app.RenderOptions{ShowLanguages: true},
			want: Document{
				Width:  Width,
				Height: 20 + 45 + 4*22 + 10,
				Sections: []Section{
					{Kind: SectionLanguages, Y: 20},
				},
			},
		},
		{
			name:  "nothing enabled",
			stats: app.AggregatedStats{},
			opts:  app.RenderOptions{},
			want: Document{
				Width:  Width,
				Height: 30,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewLayout(tt.stats, tt.opts)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("NewLayout() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewLayoutHeightIndependentOfValues(t *testing.T) {
	opts := app.RenderOptions{ShowStats: true, ShowStreak: true}

	small := NewLayout(app.AggregatedStats{}, opts)
	big := NewLayout(app.AggregatedStats{
		TotalStars: 1234567,
		Followers:  99999,
		Streak:     app.StreakFigures{Current: 365, Longest: 1000},
		Totals:     app.ContributionTotals{Contributions: 50000},
	}, opts)

	assert.Equal(t, 250, small.Height)
	assert.Equal(t, small.Height, big.Height)
}
