package am

import "github.com/teranos/cleantype/typename"

// Rules converts the clean section into a typename rule set
func (c *Config) Rules() typename.Rules {
	rules := typename.Rules{
		ExtraNamespaces:            append([]string(nil), c.Clean.ExtraNamespaces...),
		SuppressElaboratedKeywords: c.Clean.SuppressElaboratedKeywords,
		UndesirableNodes:           append([]string(nil), c.Clean.UndesirableNodes...),
		ForceEastConst:             c.Clean.ForceEastConst,
	}
	for _, r := range c.Clean.Replacements {
		rules.Replacements = append(rules.Replacements, typename.Replacement{From: r.From, To: r.To})
	}
	return rules
}

// Cleaner builds a typename.Cleaner from the clean section
func (c *Config) Cleaner() *typename.Cleaner {
	return typename.NewCleaner(c.Rules())
}
