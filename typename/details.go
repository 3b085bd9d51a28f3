package typename

import "strings"

// ShowDetails renders a cleaned type next to the name it describes:
// "[std::vector<int>] v".
func ShowDetails(typeStr, name string) string {
	return defaultCleaner.ShowDetails(typeStr, name)
}

// ShowDetailsFull is ShowDetails without normalization.
func ShowDetailsFull(typeStr, name string) string {
	return "[" + strings.TrimSpace(typeStr) + "] " + name
}

// ShowDetailsLambda renders a lambda's signature next to its name:
// "[lambda: (int, int) -> double] f".
func ShowDetailsLambda(memfnType, name string) (string, error) {
	return defaultCleaner.ShowDetailsLambda(memfnType, name)
}

func (c *Cleaner) ShowDetails(typeStr, name string) string {
	return "[" + c.Normalize(typeStr) + "] " + name
}

func (c *Cleaner) ShowDetailsLambda(memfnType, name string) (string, error) {
	sig, err := c.MemFnToLambdaType(memfnType, true)
	if err != nil {
		return "", err
	}
	return "[" + sig + "] " + name, nil
}

// TemplateDepth reports the template nesting depth of the cleaned type:
// 0 for "int", 1 for "std::vector<int>", 2 for "std::map<int, std::vector<int>>".
// Malformed text has depth 0.
func TemplateDepth(typeStr string) int {
	expr, ok := parseTypeExpr(defaultCleaner.Normalize(typeStr))
	if !ok {
		return 0
	}
	return expr.depth()
}

// IndentTypeTree cleans typeStr and, when its nesting exceeds depthLimit,
// lays it out one template argument per line:
//
//	std::map<
//	  int,
//	  std::vector<int>
//	>
//
// Nodes whose arguments are all plain names stay on one line.
func IndentTypeTree(typeStr string, depthLimit int) string {
	return defaultCleaner.IndentTypeTree(typeStr, depthLimit)
}

func (c *Cleaner) IndentTypeTree(typeStr string, depthLimit int) string {
	cleaned := c.Normalize(typeStr)
	expr, ok := parseTypeExpr(cleaned)
	if !ok || expr.depth() <= depthLimit {
		return cleaned
	}
	var b strings.Builder
	writeIndented(&b, expr, 0)
	return b.String()
}

func writeIndented(b *strings.Builder, expr typeExpr, level int) {
	for _, n := range expr {
		if n.depth() <= 1 {
			n.writeTo(b)
			continue
		}
		b.WriteString(n.name)
		b.WriteString("<\n")
		for i, arg := range n.args {
			b.WriteString(strings.Repeat("  ", level+1))
			writeIndented(b, trimExpr(arg), level+1)
			if i < len(n.args)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat("  ", level))
		b.WriteByte('>')
	}
}

// trimExpr strips the separator spaces an argument carries at both ends.
func trimExpr(e typeExpr) typeExpr {
	if len(e) == 0 {
		return e
	}
	out := append(typeExpr(nil), e...)
	out[0].name = strings.TrimLeft(out[0].name, " ")
	if last := len(out) - 1; !out[last].hasArgs {
		out[last].name = strings.TrimRight(out[last].name, " ")
	}
	return out
}
