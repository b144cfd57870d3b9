package app

import "time"

// RawProfile is an upstream snapshot of a user, as returned by ProfileClient.
type RawProfile struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`

	Followers   int `json:"followers"`
	Following   int `json:"following"`
	PublicRepos int `json:"publicRepos"`

	Repositories []Repository       `json:"repositories"`
	Calendar     []ContributionDay  `json:"calendar"`
	Totals       ContributionTotals `json:"totals"`
}

// Repository entity
type Repository struct {
	Name      string         `json:"name"`
	Stars     int            `json:"stars"`
	Languages []LanguageEdge `json:"languages"`
}

// LanguageEdge is a single language footprint inside one repository.
type LanguageEdge struct {
	Name  string `json:"name"`
	Size  int64  `json:"size"`
	Color string `json:"color"`
}

// ContributionDay is a calendar date paired with a count of recorded activity.
type ContributionDay struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// ContributionTotals are pre-aggregated totals reported by the data source.
// Restricted counts non-public contributions; it has no per-day resolution.
type ContributionTotals struct {
	Contributions int `json:"contributions"`
	Commits       int `json:"commits"`
	PullRequests  int `json:"pullRequests"`
	Reviews       int `json:"reviews"`
	Issues        int `json:"issues"`
	Restricted    int `json:"restricted"`
}

// LanguageShare is one language's footprint across all repositories of a user.
type LanguageShare struct {
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Percentage float64 `json:"percentage"`
}

// StreakFigures entity
type StreakFigures struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// RankResult is a coarse engagement tier.
type RankResult struct {
	Level      string `json:"level"`
	Color      string `json:"color"`
	Percentile int    `json:"percentile"`
}

// AggregatedStats holds all figures derived from a RawProfile.
type AggregatedStats struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`

	Followers   int `json:"followers"`
	Following   int `json:"following"`
	PublicRepos int `json:"publicRepos"`
	TotalStars  int `json:"totalStars"`

	Languages      []LanguageShare    `json:"languages"`
	Totals         ContributionTotals `json:"totals"`
	Streak         StreakFigures      `json:"streak"`
	RecentActivity []int              `json:"recentActivity"`
	Rank           RankResult         `json:"rank"`
}

// DisplayName returns the name shown on the card, falling back to the login.
func (s AggregatedStats) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Login
}

// ContributionTotal returns the total contributions count, optionally
// including restricted (private) contributions.
func (s AggregatedStats) ContributionTotal(includePrivate bool) int {
	total := s.Totals.Contributions
	if includePrivate {
		total += s.Totals.Restricted
	}
	return total
}
