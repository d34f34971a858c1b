package checklist

import "strings"

// Select applies the rule table to a single segment. The segment is
// lowercased and each rule's keywords are tested with substring containment,
// top to bottom; the first rule with a matching keyword wins and evaluation
// stops. The second return value is false when no rule matches; that is not
// an error, the segment simply contributes no template.
func (c *Catalog) Select(segment string) (Template, bool) {
	lower := strings.ToLower(segment)
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return rule.Template, true
			}
		}
	}
	return Template{}, false
}

// TriggeredArtifacts returns artifact tags whose trigger keyword occurs in
// the segment, in trigger-table order.
func (c *Catalog) TriggeredArtifacts(segment string) []string {
	lower := strings.ToLower(segment)
	var artifacts []string
	for _, trigger := range c.triggers {
		if strings.Contains(lower, trigger.Keyword) {
			artifacts = append(artifacts, trigger.Artifact)
		}
	}
	return artifacts
}
