package typename

import "strings"

// TokenizeParamsAroundComma splits a parameter list on commas that are not
// nested inside angle brackets, trimming each parameter. An empty list
// yields a single empty parameter, mirroring how "()" is reported.
// When normalize is true each parameter goes through NormalizeTypeString.
func TokenizeParamsAroundComma(input string, normalize bool) []string {
	return defaultCleaner.TokenizeParamsAroundComma(input, normalize)
}

// TokenizeParamsAroundComma is the Cleaner counterpart of the package-level
// function; normalize applies this cleaner's rules.
//
// Only '<' and '>' count as nesting here; parentheses are the extractor's job.
// Token boundaries do not depend on normalize.
func (c *Cleaner) TokenizeParamsAroundComma(input string, normalize bool) []string {
	var params []string
	depth := 0
	start := 0
	for i := 0; i < len(input); i++ {
		switch input[i] {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				params = append(params, input[start:i])
				start = i + 1
			}
		}
	}
	params = append(params, input[start:])

	for i, p := range params {
		p = strings.TrimSpace(p)
		if normalize {
			p = c.Normalize(p)
		}
		params[i] = p
	}
	return params
}
