package config

import (
	"fmt"
	"sort"
	"time"

	"github.com/flarebyte/describe-object/internal/registry"
	"github.com/flarebyte/describe-object/internal/shape"
)

// Apply registers the scripted shapes, then the aliases, into r. Scripted
// shapes may replace built-ins of the same name.
func (c Config) Apply(r *registry.Registry) error {
	for _, d := range c.Shapes {
		s, err := shape.NewScripted(shape.ScriptDef{
			Name:        d.Name,
			Description: d.Description,
			Params:      d.Params,
			Quantities:  d.Quantities,
			Script:      d.Script,
			Timeout:     time.Duration(d.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			return err
		}
		r.Register(d.Name, s.Factory())
	}

	aliases := make([]string, 0, len(c.Aliases))
	for a := range c.Aliases {
		aliases = append(aliases, a)
	}
	sort.Strings(aliases)
	for _, a := range aliases {
		if err := r.Alias(a, c.Aliases[a]); err != nil {
			return fmt.Errorf("alias %s: %w", a, err)
		}
	}
	return nil
}
