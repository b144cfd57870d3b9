package github

import (
	"fmt"
	"time"

	"github.com/m-zajac/ghcard/internal/app"
)

const calendarDateLayout = "2006-01-02"

const profileQuery = `query userInfo($login: String!) {
  user(login: $login) {
    name
    login
    avatarUrl
    followers {
      totalCount
    }
    following {
      totalCount
    }
    repositories(first: 100, ownerAffiliations: OWNER, orderBy: {field: UPDATED_AT, direction: DESC}, isFork: false) {
      totalCount
      nodes {
        name
        stargazers {
          totalCount
        }
        languages(first: 8, orderBy: {field: SIZE, direction: DESC}) {
          edges {
            size
            node {
              color
              name
            }
          }
        }
      }
    }
    contributionsCollection {
      totalCommitContributions
      restrictedContributionsCount
      totalPullRequestContributions
      totalPullRequestReviewContributions
      totalIssueContributions
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            contributionCount
            date
          }
        }
      }
    }
  }
}`

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type graphqlError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type totalCount struct {
	TotalCount int `json:"totalCount"`
}

type profileResponse struct {
	Data struct {
		User *userResponse `json:"user"`
	} `json:"data"`
	Errors []graphqlError `json:"errors"`
}

type userResponse struct {
	Name         string     `json:"name"`
	Login        string     `json:"login"`
	AvatarURL    string     `json:"avatarUrl"`
	Followers    totalCount `json:"followers"`
	Following    totalCount `json:"following"`
	Repositories struct {
		TotalCount int `json:"totalCount"`
		Nodes      []struct {
			Name       string     `json:"name"`
			Stargazers totalCount `json:"stargazers"`
			Languages  struct {
				Edges []struct {
					Size int64 `json:"size"`
					Node struct {
						Color string `json:"color"`
						Name  string `json:"name"`
					} `json:"node"`
				} `json:"edges"`
			} `json:"languages"`
		} `json:"nodes"`
	} `json:"repositories"`
	ContributionsCollection struct {
		TotalCommitContributions            int `json:"totalCommitContributions"`
		RestrictedContributionsCount        int `json:"restrictedContributionsCount"`
		TotalPullRequestContributions       int `json:"totalPullRequestContributions"`
		TotalPullRequestReviewContributions int `json:"totalPullRequestReviewContributions"`
		TotalIssueContributions             int `json:"totalIssueContributions"`
		ContributionCalendar                struct {
			TotalContributions int `json:"totalContributions"`
			Weeks              []struct {
				ContributionDays []struct {
					ContributionCount int    `json:"contributionCount"`
					Date              string `json:"date"`
				} `json:"contributionDays"`
			} `json:"weeks"`
		} `json:"contributionCalendar"`
	} `json:"contributionsCollection"`
}

// ToProfile converts graphql response to app.RawProfile.
func (r profileResponse) ToProfile(login string) (*app.RawProfile, error) {
	if len(r.Errors) > 0 {
		if r.Errors[0].Type == "NOT_FOUND" {
			return nil, app.NotFoundError(fmt.Sprintf("user %s not found", login))
		}
		return nil, fmt.Errorf("graphql error: %s", r.Errors[0].Message)
	}

	u := r.Data.User
	if u == nil {
		return nil, app.NotFoundError(fmt.Sprintf("user %s not found", login))
	}

	p := app.RawProfile{
		Login:        u.Login,
		Name:         u.Name,
		AvatarURL:    u.AvatarURL,
		Followers:    u.Followers.TotalCount,
		Following:    u.Following.TotalCount,
		PublicRepos:  u.Repositories.TotalCount,
		Repositories: make([]app.Repository, 0, len(u.Repositories.Nodes)),
	}

	for _, n := range u.Repositories.Nodes {
		repo := app.Repository{
			Name:  n.Name,
			Stars: n.Stargazers.TotalCount,
		}
		for _, e := range n.Languages.Edges {
			repo.Languages = append(repo.Languages, app.LanguageEdge{
				Name:  e.Node.Name,
				Size:  e.Size,
				Color: e.Node.Color,
			})
		}
		p.Repositories = append(p.Repositories, repo)
	}

	cc := u.ContributionsCollection
	p.Totals = app.ContributionTotals{
		Contributions: cc.ContributionCalendar.TotalContributions,
		Commits:       cc.TotalCommitContributions,
		PullRequests:  cc.TotalPullRequestContributions,
		Reviews:       cc.TotalPullRequestReviewContributions,
		Issues:        cc.TotalIssueContributions,
		Restricted:    cc.RestrictedContributionsCount,
	}

	for _, w := range cc.ContributionCalendar.Weeks {
		for _, d := range w.ContributionDays {
			date, err := time.Parse(calendarDateLayout, d.Date)
			if err != nil {
				return nil, app.InvalidProfileError(fmt.Sprintf("invalid contribution date %q", d.Date))
			}
			p.Calendar = append(p.Calendar, app.ContributionDay{
				Date:  date,
				Count: d.ContributionCount,
			})
		}
	}

	return &p, nil
}
