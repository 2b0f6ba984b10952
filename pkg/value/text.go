package value

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	stripPolicyOnce sync.Once
	stripPolicy     *bluemonday.Policy
)

// PlainText strips markup from rich text values, unescapes entities and
// collapses runs of whitespace into single spaces.
func PlainText(markup string) string {
	trimmed := strings.TrimSpace(markup)
	if trimmed == "" {
		return ""
	}
	// Block-level tags separate words; keep a space where they stood.
	spaced := blockBreaks.Replace(trimmed)
	cleaned := stripSanitizer().Sanitize(spaced)
	return strings.Join(strings.Fields(html.UnescapeString(cleaned)), " ")
}

var blockBreaks = strings.NewReplacer(
	"<br>", " <br>",
	"<br/>", " <br/>",
	"<br />", " <br />",
	"</p>", "</p> ",
	"</li>", "</li> ",
	"</div>", "</div> ",
	"</h1>", "</h1> ",
	"</h2>", "</h2> ",
	"</h3>", "</h3> ",
)

func stripSanitizer() *bluemonday.Policy {
	stripPolicyOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})
	return stripPolicy
}
