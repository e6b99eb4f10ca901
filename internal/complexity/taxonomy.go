/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package complexity

// Category groups trigger keywords under one kind of complexity signal.
type Category struct {
	Name     string   `json:"name" yaml:"name"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// defaultTaxonomy is scanned in declaration order, category first then keyword.
// Keywords are lowercase substrings; there is no word-boundary matching.
var defaultTaxonomy = []Category{
	{Name: "architectural", Keywords: []string{"architecture", "design", "structure", "pattern", "approach"}},
	{Name: "planning", Keywords: []string{"plan", "roadmap", "strategy", "phases", "timeline", "milestones"}},
	{Name: "decision", Keywords: []string{"should we", "which is better", "compare", "versus", "vs", "choose", "decide"}},
	{Name: "analysis", Keywords: []string{"analyze", "evaluate", "assess", "review", "examine", "investigate"}},
	{Name: "specification", Keywords: []string{"spec", "specification", "requirements", "detailed design"}},
	{Name: "multi_step", Keywords: []string{"step 1", "step 2", "first", "then", "next", "after that", "finally"}},
	{Name: "trade_offs", Keywords: []string{"pros and cons", "trade-off", "trade off", "advantages", "disadvantages"}},
}

// defaultSimplePhrases mark trivial edits. Any one of them wins over every other signal.
var defaultSimplePhrases = []string{
	"fix the bug",
	"add a comment",
	"rename this",
	"update the import",
	"change the color",
	"fix typo",
	"add console.log",
	"remove this line",
}

func copyCategories(src []Category) []Category {
	out := make([]Category, len(src))
	for i, c := range src {
		out[i] = Category{Name: c.Name, Keywords: append([]string(nil), c.Keywords...)}
	}
	return out
}
