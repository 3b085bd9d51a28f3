package typename

// ExtractionResult is the outcome of ExtractParenthesisContentAtEnd.
// ParenthesisContent and RemainingAtStart are empty unless Success is set.
type ExtractionResult struct {
	ParenthesisContent string
	RemainingAtStart   string
	Success            bool
}

// ExtractParenthesisContentAtEnd locates the last complete parenthesis group
// in input and splits the text at its opening parenthesis. Text after the
// group is discarded:
//
//	"ABC(DEF)(GHI)KLM" -> RemainingAtStart "ABC(DEF)", ParenthesisContent "GHI"
//
// Success is false when input has no ')' or the last ')' has no matching '('.
func ExtractParenthesisContentAtEnd(input string) ExtractionResult {
	closing := -1
	for i := len(input) - 1; i >= 0; i-- {
		if input[i] == ')' {
			closing = i
			break
		}
	}
	if closing < 0 {
		return ExtractionResult{}
	}

	depth := 0
	for i := closing; i >= 0; i-- {
		switch input[i] {
		case ')':
			depth++
		case '(':
			depth--
			if depth == 0 {
				return ExtractionResult{
					ParenthesisContent: input[i+1 : closing],
					RemainingAtStart:   input[:i],
					Success:            true,
				}
			}
		}
	}
	return ExtractionResult{}
}
