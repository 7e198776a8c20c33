package rotation

import (
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{([A-Za-z][A-Za-z0-9_]*)\}`)

// Placeholders returns the distinct {TOKEN} names in template, in order of first appearance.
// Lower and mixed case names are reported too so that validation can reject them.
func Placeholders(template string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			out = append(out, m[1])
		}
	}
	return out
}

// Render substitutes every placeholder in template with a fragment drawn from the
// vocabulary tokens binds it to. Each distinct token is drawn once per call, so a token
// used twice in the template gets the same fragment both times. Tokens with no binding,
// or bound to an unknown vocabulary, are left as literal text and returned as unresolved.
func (r *Registry) Render(template string, tokens map[string]string) (string, []string) {
	names := Placeholders(template)
	if len(names) == 0 {
		return template, nil
	}

	var unresolved []string
	pairs := make([]string, 0, len(names)*2)
	for _, tok := range names {
		fragment, err := r.Draw(tokens[tok])
		if err != nil {
			unresolved = append(unresolved, tok)
			continue
		}
		pairs = append(pairs, "{"+tok+"}", fragment)
	}
	if len(pairs) == 0 {
		return template, unresolved
	}
	return strings.NewReplacer(pairs...).Replace(template), unresolved
}
