package app

// Score weights. Stars and pull requests count more than raw contributions.
const (
	contributionWeight = 1.0
	starWeight         = 2.0
	pullRequestWeight  = 3.0
	publicRepoWeight   = 0.5
	followerWeight     = 0.5
)

// rankTier maps a minimal score to a rank.
//
// Percentile is a fixed label of the tier. It's a coarse gamification heuristic,
// not computed from any population distribution.
type rankTier struct {
	minScore float64
	rank     RankResult
}

// rankTiers are ordered from the highest threshold; first match wins.
var rankTiers = []rankTier{
	{minScore: 1000, rank: RankResult{Level: "S", Color: "#e3b341", Percentile: 99}},
	{minScore: 500, rank: RankResult{Level: "A+", Color: "#3fb950", Percentile: 95}},
	{minScore: 250, rank: RankResult{Level: "A", Color: "#3fb950", Percentile: 87}},
	{minScore: 100, rank: RankResult{Level: "B+", Color: "#58a6ff", Percentile: 75}},
	{minScore: 50, rank: RankResult{Level: "B", Color: "#58a6ff", Percentile: 60}},
	{minScore: 25, rank: RankResult{Level: "C+", Color: "#8b949e", Percentile: 40}},
}

var lowestRank = RankResult{Level: "C", Color: "#8b949e", Percentile: 20}

// Score computes the weighted engagement score.
func Score(contributions, stars, pullRequests, publicRepos, followers int) float64 {
	return float64(contributions)*contributionWeight +
		float64(stars)*starWeight +
		float64(pullRequests)*pullRequestWeight +
		float64(publicRepos)*publicRepoWeight +
		float64(followers)*followerWeight
}

// RankForScore maps score to a rank tier.
func RankForScore(score float64) RankResult {
	for _, t := range rankTiers {
		if score >= t.minScore {
			return t.rank
		}
	}
	return lowestRank
}

// ComputeRank scores the stats and returns the rank.
// With includePrivate restricted contributions are added to the contributions count.
func ComputeRank(s AggregatedStats, includePrivate bool) RankResult {
	score := Score(
		s.ContributionTotal(includePrivate),
		s.TotalStars,
		s.Totals.PullRequests,
		s.PublicRepos,
		s.Followers,
	)
	return RankForScore(score)
}
