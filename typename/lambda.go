package typename

import (
	"regexp"
	"strings"

	"github.com/teranos/cleantype/errors"
	"github.com/teranos/cleantype/logger"
)

// Scheme names a compiler/library spelling of the member-function wrapper
// produced by std::mem_fn(&Lambda::operator()).
type Scheme string

const (
	// SchemeMSVC: class std::_Mem_fn<RET (__thiscall <lambda_HASH>::*)(PARAMS)const >
	SchemeMSVC Scheme = "msvc"
	// SchemeLibcxx: std::__1::__mem_fn<RET(CLASS:: *)(PARAMS)const>
	SchemeLibcxx Scheme = "libcxx"
	// SchemeLibstdcxx: std::_Mem_fn<RET (CLASS::*)(PARAMS) const>
	SchemeLibstdcxx Scheme = "libstdcxx"
)

// LambdaSignature is the parameter list and return type recovered from a
// member-function wrapper type.
type LambdaSignature struct {
	Params     []string
	ReturnType string
	Scheme     Scheme
}

func (s LambdaSignature) String() string {
	return "lambda: (" + strings.Join(s.Params, ", ") + ") -> " + s.ReturnType
}

// memFnGrammar recognizes one wrapper spelling. Every known spelling wraps
// the same "RET (CLASS::*)(PARAMS) quals" body.
type memFnGrammar struct {
	scheme  Scheme
	wrapper *regexp.Regexp
}

// grammars are tried in order; the first whose wrapper matches decides.
var grammars = []memFnGrammar{
	{SchemeMSVC, regexp.MustCompile(`^class\s+std::_Mem_fn\s*<`)},
	{SchemeLibcxx, regexp.MustCompile(`^std::__\w+::__mem_fn\s*<`)},
	{SchemeLibstdcxx, regexp.MustCompile(`^std::_Mem_fn\s*<`)},
}

// rawSignature holds the unprocessed parameter and return type text.
type rawSignature struct {
	params     string
	returnType string
}

// parse reports matched=false when the wrapper is not this grammar's.
func (g memFnGrammar) parse(text string) (sig rawSignature, matched bool, err error) {
	loc := g.wrapper.FindStringIndex(text)
	if loc == nil {
		return rawSignature{}, false, nil
	}
	malformed := func(what string) error {
		return errors.WithDetailf(
			errors.Wrapf(errors.ErrMalformedSignature, "%s wrapper: %s", g.scheme, what),
			"input: %s", text)
	}

	end := strings.LastIndexByte(text, '>')
	if end < loc[1] {
		return rawSignature{}, true, malformed("missing closing '>'")
	}
	body := trimCallQualifiers(text[loc[1]:end])

	params := ExtractParenthesisContentAtEnd(body)
	if !params.Success {
		return rawSignature{}, true, malformed("no parameter list")
	}
	declarator := ExtractParenthesisContentAtEnd(params.RemainingAtStart)
	if !declarator.Success || !isMemberPointerDeclarator(declarator.ParenthesisContent) {
		return rawSignature{}, true, malformed("no member-pointer declarator")
	}
	returnType := strings.TrimSpace(declarator.RemainingAtStart)
	if returnType == "" {
		return rawSignature{}, true, malformed("no return type")
	}

	paramText := strings.TrimSpace(params.ParenthesisContent)
	if paramText == "void" {
		// MSVC spells an empty parameter list "(void)"
		paramText = ""
	}
	return rawSignature{params: paramText, returnType: returnType}, true, nil
}

var callQualifiers = []string{"const", "volatile", "noexcept", "&&", "&"}

// trimCallQualifiers drops the cv/ref/noexcept tail after the parameter list.
func trimCallQualifiers(s string) string {
	s = strings.TrimSpace(s)
	for trimmed := true; trimmed; {
		trimmed = false
		for _, q := range callQualifiers {
			if !strings.HasSuffix(s, q) {
				continue
			}
			rest := s[:len(s)-len(q)]
			if q[0] != '&' && rest != "" && isPathByte(rest[len(rest)-1]) {
				continue
			}
			s = strings.TrimSpace(rest)
			trimmed = true
		}
	}
	return s
}

// isMemberPointerDeclarator accepts "CLASS::*" with an optional MSVC calling
// convention and any spacing, e.g. "__thiscall <lambda_1>::*" or "$_5:: *".
func isMemberPointerDeclarator(s string) bool {
	return strings.HasSuffix(strings.Join(strings.Fields(s), ""), "::*")
}

// ParseLambdaSignature recovers a lambda's signature from the type of
// std::mem_fn(&Lambda::operator()). When normalize is set, parameters and
// return type go through NormalizeTypeString.
func ParseLambdaSignature(memfnType string, normalize bool) (LambdaSignature, error) {
	return defaultCleaner.ParseLambdaSignature(memfnType, normalize)
}

// ParseLambdaSignature is the Cleaner counterpart of the package-level function.
func (c *Cleaner) ParseLambdaSignature(memfnType string, normalize bool) (LambdaSignature, error) {
	text := strings.TrimSpace(memfnType)
	for _, g := range grammars {
		raw, matched, err := g.parse(text)
		if !matched {
			continue
		}
		if err != nil {
			return LambdaSignature{}, err
		}
		logger.Debugw("lambda wrapper recognized",
			logger.FieldScheme, string(g.scheme),
			logger.FieldInput, text)

		returnType := raw.returnType
		if normalize {
			returnType = c.Normalize(returnType)
		}
		return LambdaSignature{
			Params:     c.TokenizeParamsAroundComma(raw.params, normalize),
			ReturnType: returnType,
			Scheme:     g.scheme,
		}, nil
	}

	return LambdaSignature{}, errors.WithHint(
		errors.WithDetailf(errors.ErrUnrecognizedScheme, "input: %s", text),
		"expected the type name of std::mem_fn(&Lambda::operator()) as spelled by MSVC, libc++ or libstdc++")
}

// MemFnToLambdaType renders the lambda signature of a member-function wrapper
// type as "lambda: (p1, p2) -> R".
func MemFnToLambdaType(memfnType string, normalize bool) (string, error) {
	return defaultCleaner.MemFnToLambdaType(memfnType, normalize)
}

// MemFnToLambdaType is the Cleaner counterpart of the package-level function.
func (c *Cleaner) MemFnToLambdaType(memfnType string, normalize bool) (string, error) {
	sig, err := c.ParseLambdaSignature(memfnType, normalize)
	if err != nil {
		return "", err
	}
	return sig.String(), nil
}

// DetectScheme reports which wrapper spelling memfnType uses.
func DetectScheme(memfnType string) (Scheme, bool) {
	text := strings.TrimSpace(memfnType)
	for _, g := range grammars {
		if g.wrapper.MatchString(text) {
			return g.scheme, true
		}
	}
	return "", false
}
