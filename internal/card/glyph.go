package card

import "fmt"

// Glyphs are 16x16 octicons; each is a pure function of its fill color.

const glyphFormat = `<svg width="16" height="16" viewBox="0 0 16 16" fill="%s">%s</svg>`

const (
	starsPath       = `<path d="M8 .25a.75.75 0 01.673.418l1.882 3.815 4.21.612a.75.75 0 01.416 1.279l-3.046 2.97.719 4.192a.75.75 0 01-1.088.791L8 12.347l-3.766 1.98a.75.75 0 01-1.088-.79l.72-4.194L.818 6.374a.75.75 0 01.416-1.28l4.21-.611L7.327.668A.75.75 0 018 .25z"/>`
	commitPath      = `<path d="M10.5 7.75a2.5 2.5 0 11-5 0 2.5 2.5 0 015 0zm1.43.75a4.002 4.002 0 01-7.86 0H.75a.75.75 0 110-1.5h3.32a4.001 4.001 0 017.86 0h3.32a.75.75 0 110 1.5h-3.32z"/>`
	pullRequestPath = `<path d="M1.5 3.25a2.25 2.25 0 113 2.122v5.256a2.251 2.251 0 11-1.5 0V5.372A2.25 2.25 0 011.5 3.25zm5.677-.177L9.573.677A.25.25 0 0110 .854v2.396h2.25A1.75 1.75 0 0114 5v5.628a2.251 2.251 0 11-1.5 0V5a.25.25 0 00-.25-.25H10v2.396a.25.25 0 01-.427.177L7.177 4.927a.25.25 0 010-.354z"/>`
	issuePath       = `<path d="M8 9.5a1.5 1.5 0 100-3 1.5 1.5 0 000 3z"/><path d="M8 0a8 8 0 100 16A8 8 0 008 0zM1.5 8a6.5 6.5 0 1113 0 6.5 6.5 0 01-13 0z"/>`
	repoPath        = `<path d="M2 2.5A2.5 2.5 0 014.5 0h8.75a.75.75 0 01.75.75v12.5a.75.75 0 01-.75.75h-2.5a.75.75 0 010-1.5h1.75v-2h-8a1 1 0 00-.714 1.7.75.75 0 01-1.072 1.05A2.495 2.495 0 012 11.5v-9zm10.5-1V9h-8c-.356 0-.694.074-1 .208V2.5a1 1 0 011-1h8zM5 12.25v3.25a.25.25 0 00.4.2l1.45-1.087a.25.25 0 01.3 0L8.6 15.7a.25.25 0 00.4-.2v-3.25a.25.25 0 00-.25-.25h-3.5a.25.25 0 00-.25.25z"/>`
	followersPath   = `<path d="M2 5.5a3.5 3.5 0 115.898 2.549 5.507 5.507 0 013.034 4.084.75.75 0 11-1.482.235 4.001 4.001 0 00-7.9 0 .75.75 0 01-1.482-.236A5.507 5.507 0 013.102 8.05 3.49 3.49 0 012 5.5zM11 4a3.001 3.001 0 012.22 5.018 5.01 5.01 0 012.56 3.012.75.75 0 01-1.36.44 3.502 3.502 0 00-6.84 0 .75.75 0 01-1.36-.44 5.01 5.01 0 012.56-3.012A3.001 3.001 0 0111 4z"/>`
)

type glyph func(color string) string

func newGlyph(path string) glyph {
	return func(color string) string {
		return fmt.Sprintf(glyphFormat, color, path)
	}
}

var (
	glyphStars       = newGlyph(starsPath)
	glyphCommit      = newGlyph(commitPath)
	glyphPullRequest = newGlyph(pullRequestPath)
	glyphIssue       = newGlyph(issuePath)
	glyphRepo        = newGlyph(repoPath)
	glyphFollowers   = newGlyph(followersPath)
)
