package checklist

// Template is a static, reusable checklist-step definition. Templates are
// constructed once at package initialization and never mutated afterwards.
type Template struct {
	Title     string
	Action    string
	Verify    string
	Artifacts []string
}

// Rule pairs a keyword set with the template it selects. Rules are evaluated
// in table order; the first rule with any keyword contained in the lowercased
// segment wins.
type Rule struct {
	Keywords []string
	Template Template
}

// ArtifactTrigger maps a keyword occurring in a segment to an extra artifact
// tag. Triggers are independent of the rule table and evaluated in order so
// artifact union stays deterministic.
type ArtifactTrigger struct {
	Keyword  string
	Artifact string
}

// Catalog bundles the rule table, the generic fallback pool and the artifact
// triggers for one locale.
type Catalog struct {
	locale   string
	rules    []Rule
	fallback []Template
	triggers []ArtifactTrigger
}

// Locale returns the locale this catalog was built for.
func (c *Catalog) Locale() string {
	return c.locale
}

// Rules returns the ordered rule table.
func (c *Catalog) Rules() []Rule {
	return c.rules
}

// Fallback returns the ordered generic fallback pool.
func (c *Catalog) Fallback() []Template {
	return c.fallback
}
