package app

import (
	"math"
	"sort"
	"time"

	"github.com/pkg/errors"
)

const (
	// MaxLanguages is the maximum number of aggregated language shares.
	MaxLanguages = 8

	// RecentActivityWindow is the number of trailing days in the activity sparkline.
	RecentActivityWindow = 30
)

// Aggregate reduces a raw profile into derived stats.
// today is the data source's notion of the current day, used by the streak heuristic.
func Aggregate(p *RawProfile, today time.Time) (AggregatedStats, error) {
	if err := p.Validate(); err != nil {
		return AggregatedStats{}, errors.Wrap(err, "validating profile")
	}

	stats := AggregatedStats{
		Login:          p.Login,
		Name:           p.Name,
		AvatarURL:      p.AvatarURL,
		Followers:      p.Followers,
		Following:      p.Following,
		PublicRepos:    p.PublicRepos,
		TotalStars:     TotalStars(p.Repositories),
		Languages:      AggregateLanguages(p.Repositories),
		Totals:         p.Totals,
		Streak:         ComputeStreaks(p.Calendar, today),
		RecentActivity: ComputeRecentActivity(p.Calendar, RecentActivityWindow),
	}
	stats.Rank = ComputeRank(stats, false)

	return stats, nil
}

// Validate checks that the profile carries the structure required for aggregation.
func (p *RawProfile) Validate() error {
	if p == nil {
		return InvalidProfileError("profile is missing")
	}
	if p.Login == "" {
		return InvalidProfileError("profile login is missing")
	}
	for _, d := range p.Calendar {
		if d.Count < 0 {
			return InvalidProfileError("contribution count cannot be negative")
		}
	}

	return nil
}

// AggregateLanguages accumulates language sizes across repositories and returns
// up to MaxLanguages shares sorted by percentage, descending.
// Equal percentages keep the order in which languages were first encountered.
// Percentages are rounded to one decimal and are not adjusted to sum to 100.
func AggregateLanguages(repos []Repository) []LanguageShare {
	type langSize struct {
		name  string
		color string
		size  int64
	}

	var ordered []*langSize
	byName := make(map[string]*langSize)
	var total int64
	for _, r := range repos {
		for _, edge := range r.Languages {
			ls, ok := byName[edge.Name]
			if !ok {
				ls = &langSize{
					name:  edge.Name,
					color: LanguageColor(edge.Name, edge.Color),
				}
				byName[edge.Name] = ls
				ordered = append(ordered, ls)
			}
			ls.size += edge.Size
			total += edge.Size
		}
	}
	if total == 0 {
		return nil
	}

	shares := make([]LanguageShare, 0, len(ordered))
	for _, ls := range ordered {
		pct := float64(ls.size) / float64(total) * 100.0
		shares = append(shares, LanguageShare{
			Name:       ls.name,
			Color:      ls.color,
			Percentage: math.Round(pct*10) / 10,
		})
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Percentage > shares[j].Percentage
	})

	if len(shares) > MaxLanguages {
		shares = shares[:MaxLanguages]
	}

	return shares
}

// ComputeStreaks scans the calendar from the most recent day to the oldest.
//
// A zero-count day equal to today doesn't break the current streak, because
// today's activity may not be reflected by the data source yet. Any other
// zero-count day stops the current streak; scanning goes on to find the longest one.
func ComputeStreaks(days []ContributionDay, today time.Time) StreakFigures {
	var (
		figures StreakFigures
		temp    int
		broken  bool
	)
	for i := len(days) - 1; i >= 0; i-- {
		day := days[i]
		if day.Count > 0 {
			temp++
			if temp > figures.Longest {
				figures.Longest = temp
			}
			if !broken {
				figures.Current++
			}
			continue
		}

		temp = 0
		if !sameDay(day.Date, today) {
			broken = true
		}
	}

	return figures
}

// ComputeRecentActivity returns counts of the last window days, oldest first.
func ComputeRecentActivity(days []ContributionDay, window int) []int {
	if window <= 0 || len(days) == 0 {
		return nil
	}

	start := len(days) - window
	if start < 0 {
		start = 0
	}

	activity := make([]int, 0, len(days)-start)
	for _, d := range days[start:] {
		activity = append(activity, d.Count)
	}

	return activity
}

// TotalStars sums stars of all repositories.
func TotalStars(repos []Repository) int {
	var total int
	for _, r := range repos {
		total += r.Stars
	}
	return total
}

// sameDay compares calendar dates in UTC.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
