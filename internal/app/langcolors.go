package app

// FallbackLanguageColor is used for languages without a known display color.
const FallbackLanguageColor = "#8b949e"

// languageColors matches GitHub's linguist colors for the most common languages.
// Read-only after init.
var languageColors = map[string]string{
	"JavaScript": "#f1e05a",
	"TypeScript": "#3178c6",
	"Python":     "#3572A5",
	"Java":       "#b07219",
	"C++":        "#f34b7d",
	"C":          "#555555",
	"C#":         "#178600",
	"PHP":        "#4F5D95",
	"Ruby":       "#701516",
	"Go":         "#00ADD8",
	"Rust":       "#dea584",
	"Swift":      "#F05138",
	"Kotlin":     "#A97BFF",
	"Dart":       "#00B4AB",
	"Scala":      "#c22d40",
	"HTML":       "#e34c26",
	"CSS":        "#563d7c",
	"SCSS":       "#c6538c",
	"Vue":        "#41b883",
	"Shell":      "#89e051",
	"PowerShell": "#012456",
	"Lua":        "#000080",
	"Perl":       "#0298c3",
	"R":          "#198CE7",
	"Julia":      "#a270ba",
	"Haskell":    "#5e5086",
	"Elixir":     "#6e4a7e",
	"Clojure":    "#db5855",
	"Erlang":     "#B83998",
	"Zig":        "#ec915c",
	"Nim":        "#ffc200",
	"Solidity":   "#AA6746",
	"GLSL":       "#5686a5",
	"Makefile":   "#427819",
	"CMake":      "#DA3434",
	"Dockerfile": "#384d54",
}

// LanguageColor returns the display color for a language.
// The static table wins over the upstream color; unknown languages without
// an upstream color get FallbackLanguageColor.
func LanguageColor(name string, upstream string) string {
	if c, ok := languageColors[name]; ok {
		return c
	}
	if upstream != "" {
		return upstream
	}
	return FallbackLanguageColor
}
