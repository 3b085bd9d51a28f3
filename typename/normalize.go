package typename

import "strings"

// NormalizeTypeString rewrites verbose standard-library spellings into their
// short canonical forms using DefaultRules, e.g.
//
//	std::__1::basic_string<char, std::__1::char_traits<char>, std::__1::allocator<char> >
//
// becomes std::string. Unrecognized text passes through.
func NormalizeTypeString(typeStr string) string {
	return defaultCleaner.Normalize(typeStr)
}

// Normalize applies the cleaner's rules to typeStr. The result is stable:
// normalizing it again returns it unchanged.
func (c *Cleaner) Normalize(typeStr string) string {
	text := c.applyTextRules(typeStr)
	expr, ok := parseTypeExpr(text)
	if !ok {
		return text
	}

	out := whitespaceRe.ReplaceAllString(c.rewrite(expr).String(), " ")
	out = strings.TrimSpace(out)
	if c.rules.ForceEastConst {
		out = toEastConst(out)
	}
	return out
}

// applyTextRules runs the rules that work on flat text: versioned namespaces,
// elaborated keywords, MSVC pointer decorations and whitespace.
func (c *Cleaner) applyTextRules(s string) string {
	s = c.stripNamespaces(s)
	if c.rules.SuppressElaboratedKeywords {
		s = elaboratedKeywordRe.ReplaceAllString(s, "")
	}
	s = ptr64Re.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func (c *Cleaner) stripNamespaces(s string) string {
	// Adjacent tags ("__1::__debug::") share a separator, so repeat until stable.
	for {
		out := c.namespaceRe.ReplaceAllString(s, "${1}")
		if out == s {
			return out
		}
		s = out
	}
}

// rewrite normalizes every template node bottom-up.
func (c *Cleaner) rewrite(expr typeExpr) typeExpr {
	out := make(typeExpr, 0, len(expr))
	for _, n := range expr {
		if !n.hasArgs {
			out = append(out, n)
			continue
		}

		prefix, path := splitQualifiedTail(n.name)
		if stdTemplates[path] {
			path = "std::" + path
		}

		args := make([]typeExpr, 0, len(n.args))
		for _, arg := range n.args {
			args = append(args, c.rewrite(arg))
		}
		// Only a trailing run of defaulted arguments can be omitted.
		for len(args) > 1 && c.isDefaultedArg(path, len(args)-1, args[len(args)-1]) {
			args = args[:len(args)-1]
		}

		canonical := typeNode{name: path, args: args, hasArgs: true}
		if to, ok := c.replacements[canonical.String()]; ok {
			out = append(out, typeNode{name: prefix + to})
			continue
		}
		out = append(out, typeNode{name: prefix + path, args: args, hasArgs: true})
	}
	return out
}

// isDefaultedArg reports whether arg, found at position pos of template,
// is an undesirable node that may be omitted there. The standard defaults
// only match the container parameter they are the default for, so
// "std::pair<int, std::less<int>>" keeps its second argument. Other
// configured nodes match any position but the first.
func (c *Cleaner) isDefaultedArg(template string, pos int, arg typeExpr) bool {
	if pos == 0 {
		return false
	}
	head, ok := soleNodePath(arg)
	if !ok || !c.isUndesirable(head) {
		return false
	}
	if !strings.HasPrefix(head, "std::") && standardDefaults["std::"+head] {
		head = "std::" + head
	}
	if !standardDefaults[head] {
		return true
	}
	params := defaultedParams[template]
	return pos < len(params) && params[pos] == head
}

// soleNodePath returns the qualified name of arg when arg is exactly one
// node, e.g. "std::allocator<int>" but not "std::allocator<int> const".
func soleNodePath(arg typeExpr) (string, bool) {
	if len(arg) == 0 {
		return "", false
	}
	prefix, path := splitQualifiedTail(arg[0].name)
	if strings.TrimSpace(prefix) != "" || path == "" {
		return "", false
	}
	for _, rest := range arg[1:] {
		if rest.hasArgs || strings.TrimSpace(rest.name) != "" {
			return "", false
		}
	}
	return path, true
}

// toEastConst moves a leading const qualifier behind the type it applies to:
// "const std::string &" -> "std::string const &".
func toEastConst(s string) string {
	if !strings.HasPrefix(s, "const ") {
		return s
	}
	rest := strings.TrimSpace(s[len("const "):])
	i := len(rest)
	for i > 0 && strings.IndexByte(" &*", rest[i-1]) >= 0 {
		i--
	}
	core, declarator := rest[:i], strings.TrimSpace(rest[i:])
	if core == "" {
		return s
	}
	out := core + " const"
	if declarator != "" {
		out += " " + declarator
	}
	return out
}
