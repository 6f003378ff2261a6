package validation

import "github.com/dmitrymomot/livevalidation/pkg/logger"

// ValidatorsFor returns the components concerning path, in collection order.
// With exclusively set, only components concerning path and nothing else
// are returned.
func (c *Context) ValidatorsFor(path string, exclusively bool) []Component {
	var out []Component
	for _, m := range c.members {
		if m.component.ContainsProperty(path, exclusively) {
			out = append(out, m.component)
		}
	}
	return out
}

// ValidatorFor returns the single component concerning path. It fails with
// ErrNoValidator when nothing matches and with an *AmbiguousResolutionError
// when more than one component does.
func (c *Context) ValidatorFor(path string) (Component, error) {
	matches := c.ValidatorsFor(path, false)
	switch len(matches) {
	case 0:
		return nil, ErrNoValidator
	case 1:
		return matches[0], nil
	default:
		return nil, &AmbiguousResolutionError{Path: path, Count: len(matches)}
	}
}

// TextFor merges the messages of the currently invalid components
// concerning path, in collection order.
func (c *Context) TextFor(path string) Text {
	var texts []Text
	for _, comp := range c.ValidatorsFor(path, false) {
		if !comp.IsValid() {
			texts = append(texts, comp.Text())
		}
	}
	return MergeText(texts...)
}

// IsValidFor reports whether every component concerning path is valid.
func (c *Context) IsValidFor(path string) bool {
	for _, comp := range c.ValidatorsFor(path, false) {
		if !comp.IsValid() {
			return false
		}
	}
	return true
}

// RemoveRulesFor removes and closes every component concerning path and
// returns how many were removed.
func (c *Context) RemoveRulesFor(path string) int {
	matches := c.ValidatorsFor(path, false)
	c.RemoveMany(matches...)
	for _, comp := range matches {
		_ = comp.Close()
	}
	if len(matches) > 0 {
		c.log.Debug("rules removed", logger.Property(path), logger.Count(len(matches)))
	}
	return len(matches)
}
