package typename

import (
	"regexp"
	"strings"
)

// Replacement rewrites a whole template node once its arguments are clean.
// From is compared against the canonical rendering of the node.
type Replacement struct {
	From string
	To   string
}

// Rules is the ordered rule set applied by a Cleaner.
type Rules struct {
	// ExtraNamespaces are stripped like the built-in versioned inline
	// namespaces (__1, __cxx11, __ndk1), e.g. "__debug".
	ExtraNamespaces []string

	// SuppressElaboratedKeywords removes "class ", "struct ", "enum " and
	// "union " as spelled by MSVC.
	SuppressElaboratedKeywords bool

	// UndesirableNodes are defaulted template arguments dropped from the
	// end of an argument list. The standard defaults (std::allocator,
	// std::less, ...) are dropped only from the container parameter they
	// default; other entries from any position but the first. Entries in
	// std:: also match the unqualified spelling.
	UndesirableNodes []string

	Replacements []Replacement

	// ForceEastConst rewrites a leading "const T &" as "T const &".
	ForceEastConst bool
}

// DefaultRules returns the rule set used by the package-level functions.
func DefaultRules() Rules {
	return Rules{
		SuppressElaboratedKeywords: true,
		UndesirableNodes: []string{
			"std::allocator",
			"std::char_traits",
			"std::less",
			"std::hash",
			"std::equal_to",
			"std::default_delete",
		},
		Replacements: []Replacement{
			{From: "std::basic_string<char>", To: "std::string"},
			{From: "std::basic_string<wchar_t>", To: "std::wstring"},
			{From: "std::basic_string<char16_t>", To: "std::u16string"},
			{From: "std::basic_string<char32_t>", To: "std::u32string"},
			{From: "std::basic_string_view<char>", To: "std::string_view"},
		},
	}
}

// stdTemplates are standard names qualified with std:: when a demangler
// drops the namespace.
var stdTemplates = map[string]bool{
	"vector": true, "deque": true, "list": true, "forward_list": true,
	"set": true, "multiset": true, "map": true, "multimap": true,
	"unordered_set": true, "unordered_multiset": true,
	"unordered_map": true, "unordered_multimap": true,
	"basic_string": true, "basic_string_view": true,
	"pair": true, "tuple": true, "array": true, "optional": true, "variant": true,
	"shared_ptr": true, "unique_ptr": true, "weak_ptr": true, "function": true,
	"stack": true, "queue": true, "priority_queue": true,
	"allocator": true, "char_traits": true, "less": true, "hash": true,
	"equal_to": true, "default_delete": true,
}

// defaultedParams lists, per standard template, the default at each
// parameter position. An empty entry is a parameter without a default.
var defaultedParams = map[string][]string{
	"std::vector":       {"", "std::allocator"},
	"std::deque":        {"", "std::allocator"},
	"std::list":         {"", "std::allocator"},
	"std::forward_list": {"", "std::allocator"},

	"std::set":      {"", "std::less", "std::allocator"},
	"std::multiset": {"", "std::less", "std::allocator"},
	"std::map":      {"", "", "std::less", "std::allocator"},
	"std::multimap": {"", "", "std::less", "std::allocator"},

	"std::unordered_set":      {"", "std::hash", "std::equal_to", "std::allocator"},
	"std::unordered_multiset": {"", "std::hash", "std::equal_to", "std::allocator"},
	"std::unordered_map":      {"", "", "std::hash", "std::equal_to", "std::allocator"},
	"std::unordered_multimap": {"", "", "std::hash", "std::equal_to", "std::allocator"},

	"std::basic_string":      {"", "std::char_traits", "std::allocator"},
	"std::basic_string_view": {"", "std::char_traits"},
	"std::unique_ptr":        {"", "std::default_delete"},
}

// standardDefaults are the nodes that appear in defaultedParams.
var standardDefaults = map[string]bool{
	"std::allocator":      true,
	"std::char_traits":    true,
	"std::less":           true,
	"std::hash":           true,
	"std::equal_to":       true,
	"std::default_delete": true,
}

var (
	versionedNamespaces = `__(?:cxx|ndk)?\d+`
	elaboratedKeywordRe = regexp.MustCompile(`\b(?:class|struct|enum|union)\s+`)
	ptr64Re             = regexp.MustCompile(`\s*\b__ptr64\b`)
	whitespaceRe        = regexp.MustCompile(`\s+`)
)

// Cleaner applies a fixed rule set. It is immutable after construction and
// safe for concurrent use.
type Cleaner struct {
	rules        Rules
	namespaceRe  *regexp.Regexp
	undesirable  map[string]bool
	replacements map[string]string
}

// NewCleaner compiles rules into a Cleaner. Replacements with an empty From
// are ignored.
func NewCleaner(rules Rules) *Cleaner {
	alternatives := []string{versionedNamespaces}
	for _, ns := range rules.ExtraNamespaces {
		ns = strings.Trim(strings.TrimSpace(ns), ":")
		if ns != "" {
			alternatives = append(alternatives, regexp.QuoteMeta(ns))
		}
	}

	c := &Cleaner{
		rules:        rules,
		namespaceRe:  regexp.MustCompile(`(^|[^\w$])(?:` + strings.Join(alternatives, "|") + `)::`),
		undesirable:  make(map[string]bool, len(rules.UndesirableNodes)),
		replacements: make(map[string]string, len(rules.Replacements)),
	}
	for _, node := range rules.UndesirableNodes {
		if node = strings.TrimSpace(node); node != "" {
			c.undesirable[node] = true
		}
	}
	for _, r := range rules.Replacements {
		from := strings.TrimSpace(r.From)
		if from == "" {
			continue
		}
		// Key on the canonical spelling so "std::basic_string< char >" matches too.
		if expr, ok := parseTypeExpr(c.applyTextRules(from)); ok {
			from = strings.TrimSpace(expr.String())
		}
		if _, seen := c.replacements[from]; !seen {
			c.replacements[from] = strings.TrimSpace(r.To)
		}
	}
	return c
}

// Rules returns a copy of the cleaner's rule set.
func (c *Cleaner) Rules() Rules {
	r := c.rules
	r.ExtraNamespaces = append([]string(nil), c.rules.ExtraNamespaces...)
	r.UndesirableNodes = append([]string(nil), c.rules.UndesirableNodes...)
	r.Replacements = append([]Replacement(nil), c.rules.Replacements...)
	return r
}

var defaultCleaner = NewCleaner(DefaultRules())

// Default returns the cleaner built from DefaultRules.
func Default() *Cleaner {
	return defaultCleaner
}

func (c *Cleaner) isUndesirable(path string) bool {
	return c.undesirable[path] || c.undesirable["std::"+path]
}
