package app

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateLanguages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		repos []Repository
		want  []LanguageShare
	}{
		{
			name:  "no repositories",
			repos: nil,
			want:  nil,
		},
		{
			name: "zero total size",
			repos: []Repository{
				{Name: "empty", Languages: []LanguageEdge{{Name: "Go", Size: 0}}},
			},
			want: nil,
		},
		{
			name: "sizes accumulated across repositories",
			repos: []Repository{
				{Name: "r1", Languages: []LanguageEdge{{Name: "Go", Size: 200}, {Name: "JavaScript", Size: 100}}},
				{Name: "r2", Languages: []LanguageEdge{{Name: "Go", Size: 100}}},
			},
			want: []LanguageShare{
				{Name: "Go", Color: "#00ADD8", Percentage: 75},
				{Name: "JavaScript", Color: "#f1e05a", Percentage: 25},
			},
		},
		{
			name: "upstream color used for unknown language, first occurrence wins",
			repos: []Repository{
				{Name: "r1", Languages: []LanguageEdge{{Name: "Gleam", Size: 10, Color: "#ffaff3"}}},
				{Name: "r2", Languages: []LanguageEdge{{Name: "Gleam", Size: 10, Color: "#000000"}}},
				{Name: "r3", Languages: []LanguageEdge{{Name: "Mystery", Size: 20}}},
			},
			want: []LanguageShare{
				{Name: "Gleam", Color: "#ffaff3", Percentage: 50},
				{Name: "Mystery", Color: FallbackLanguageColor, Percentage: 50},
			},
		},
		{
			name: "rounding drift is kept",
			repos: []Repository{
				{Name: "r1", Languages: []LanguageEdge{
					{Name: "Go", Size: 1},
					{Name: "Rust", Size: 1},
					{Name: "C", Size: 1},
				}},
			},
			want: []LanguageShare{
				{Name: "Go", Color: "#00ADD8", Percentage: 33.3},
				{Name: "Rust", Color: "#dea584", Percentage: 33.3},
				{Name: "C", Color: "#555555", Percentage: 33.3},
			},
		},
		{
			name: "ties keep first encountered order",
			repos: []Repository{
				{Name: "r1", Languages: []LanguageEdge{{Name: "Ruby", Size: 50}}},
				{Name: "r2", Languages: []LanguageEdge{{Name: "Python", Size: 100}, {Name: "Lua", Size: 50}}},
			},
			want: []LanguageShare{
				{Name: "Python", Color: "#3572A5", Percentage: 50},
				{Name: "Ruby", Color: "#701516", Percentage: 25},
				{Name: "Lua", Color: "#000080", Percentage: 25},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregateLanguages(tt.repos)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAggregateLanguagesTopShares(t *testing.T) {
	t.Parallel()

	var edges []LanguageEdge
	for i := 1; i <= 12; i++ {
		edges = append(edges, LanguageEdge{
			Name: fmt.Sprintf("lang%d", i),
			Size: int64(i * 37),
		})
	}
	repos := []Repository{
		{Name: "r1", Languages: edges[:6]},
		{Name: "r2", Languages: edges[6:]},
	}

	got := AggregateLanguages(repos)
	require.Len(t, got, MaxLanguages)
	assert.Equal(t, "lang12", got[0].Name)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Percentage, got[i].Percentage)
	}

	// Same input gives the same order.
	assert.Equal(t, got, AggregateLanguages(repos))

	all := AggregateLanguages([]Repository{{Name: "r", Languages: edges[:MaxLanguages]}})
	var sum float64
	for _, s := range all {
		sum += s.Percentage
	}
	assert.InDelta(t, 100, sum, 0.1*float64(len(all)))
}

func TestComputeStreaks(t *testing.T) {
	t.Parallel()

	today := time.Date(2024, 3, 10, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name   string
		counts []int
		// offset of the last calendar day relative to today
		lastDayOffset int
		want          StreakFigures
	}{
		{
			name:   "empty calendar",
			counts: nil,
			want:   StreakFigures{},
		},
		{
			name:   "all zero",
			counts: []int{0, 0, 0, 0},
			want:   StreakFigures{},
		},
		{
			name:   "today without contributions doesn't break the streak",
			counts: []int{1, 1, 0, 1, 1, 0},
			want:   StreakFigures{Current: 2, Longest: 2},
		},
		{
			name:   "today with contributions",
			counts: []int{3, 0, 2, 2, 1},
			want:   StreakFigures{Current: 3, Longest: 3},
		},
		{
			name:   "past zero day stops current streak, longest found beyond it",
			counts: []int{1, 1, 1, 1, 0, 1},
			want:   StreakFigures{Current: 1, Longest: 4},
		},
		{
			name:          "yesterday without contributions breaks the streak",
			counts:        []int{5, 5, 0},
			lastDayOffset: -1,
			want:          StreakFigures{Current: 0, Longest: 2},
		},
		{
			name:          "calendar reaching past today",
			counts:        []int{1, 1, 0, 1},
			lastDayOffset: 1,
			want:          StreakFigures{Current: 3, Longest: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := newCalendar(today.AddDate(0, 0, tt.lastDayOffset), tt.counts...)
			got := ComputeStreaks(days, today)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeStreaksLongestIsMaxRun(t *testing.T) {
	t.Parallel()

	today := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	counts := []int{1, 2, 0, 4, 4, 4, 4, 4, 0, 0, 1, 1, 1, 0, 7}
	got := ComputeStreaks(newCalendar(today, counts...), today)

	assert.Equal(t, 5, got.Longest)
	assert.Equal(t, 1, got.Current)
}

func TestComputeRecentActivity(t *testing.T) {
	t.Parallel()

	last := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	var long []int
	for i := 0; i < 45; i++ {
		long = append(long, i)
	}

	got := ComputeRecentActivity(newCalendar(last, long...), RecentActivityWindow)
	require.Len(t, got, RecentActivityWindow)
	assert.Equal(t, 15, got[0])
	assert.Equal(t, 44, got[len(got)-1])

	got = ComputeRecentActivity(newCalendar(last, 4, 0, 2), RecentActivityWindow)
	assert.Equal(t, []int{4, 0, 2}, got)

	assert.Nil(t, ComputeRecentActivity(nil, RecentActivityWindow))
	assert.Nil(t, ComputeRecentActivity(newCalendar(last, 1, 2), 0))
}

func TestTotalStars(t *testing.T) {
	assert.Equal(t, 0, TotalStars(nil))
	assert.Equal(t, 17, TotalStars([]Repository{{Stars: 10}, {Stars: 0}, {Stars: 7}}))
}

func TestAggregate(t *testing.T) {
	t.Parallel()

	today := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)

	t.Run("invalid profiles", func(t *testing.T) {
		_, err := Aggregate(nil, today)
		assert.True(t, IsInvalidProfileError(err))

		_, err = Aggregate(&RawProfile{Name: "no login"}, today)
		assert.True(t, IsInvalidProfileError(err))

		_, err = Aggregate(&RawProfile{
			Login:    "tester",
			Calendar: []ContributionDay{{Date: today, Count: -1}},
		}, today)
		assert.True(t, IsInvalidProfileError(err))
	})

	t.Run("valid profile", func(t *testing.T) {
		p := &RawProfile{
			Login:       "tester",
			Name:        "Test User",
			Followers:   100,
			Following:   3,
			PublicRepos: 30,
			Repositories: []Repository{
				{Name: "a", Stars: 20, Languages: []LanguageEdge{{Name: "Go", Size: 10}}},
				{Name: "b", Stars: 30},
			},
			Calendar: newCalendar(today, 1, 1, 0),
			Totals: ContributionTotals{
				Contributions: 600,
				PullRequests:  20,
				Restricted:    50,
			},
		}

		got, err := Aggregate(p, today)
		require.NoError(t, err)
		assert.Equal(t, "tester", got.Login)
		assert.Equal(t, "Test User", got.DisplayName())
		assert.Equal(t, 50, got.TotalStars)
		assert.Equal(t, []LanguageShare{{Name: "Go", Color: "#00ADD8", Percentage: 100}}, got.Languages)
		assert.Equal(t, StreakFigures{Current: 2, Longest: 2}, got.Streak)
		assert.Equal(t, []int{1, 1, 0}, got.RecentActivity)
		assert.Equal(t, "A+", got.Rank.Level)
		assert.Equal(t, 600, got.ContributionTotal(false))
		assert.Equal(t, 650, got.ContributionTotal(true))
	})
}

func TestDisplayNameFallback(t *testing.T) {
	assert.Equal(t, "login", AggregatedStats{Login: "login"}.DisplayName())
}

// newCalendar builds consecutive days ending at last.
func newCalendar(last time.Time, counts ...int) []ContributionDay {
	last = time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, time.UTC)
	days := make([]ContributionDay, 0, len(counts))
	for i, c := range counts {
		days = append(days, ContributionDay{
			Date:  last.AddDate(0, 0, i-len(counts)+1),
			Count: c,
		})
	}
	return days
}
