package config

import (
	"cuelang.org/go/cue"

	"github.com/flarebyte/describe-object/internal/render"
)

// Config holds the optional settings read from a .cue file. Presence flags
// let command-line flags decide what to override.
type Config struct {
	ConfigVersion string
	Output        Output
	Strict        bool
	HasStrict     bool
	LogLevel      string
	HasLogLevel   bool
	Aliases       map[string]string
	Shapes        []ShapeDef
}

// Output holds output.* settings.
type Output struct {
	Format    render.Format
	HasFormat bool
}

// ShapeDef is a scripted shape declared under shapes.<name>.
type ShapeDef struct {
	Name        string
	Description string
	Params      []string
	Quantities  []string
	Script      string
	TimeoutMs   int
}

// Load compiles and validates a CUE config file.
// Required fields:
//   - configVersion: string (supported: see SupportedConfigVersions)
func Load(path string) (Config, error) {
	v, err := compileCUE(path)
	if err != nil {
		return Config{}, err
	}
	return parse(v)
}

func parse(v cue.Value) (Config, error) {
	if err := requireStringField(v, "configVersion"); err != nil {
		return Config{}, err
	}
	var c Config
	if err := v.LookupPath(cue.ParsePath("configVersion")).Decode(&c.ConfigVersion); err != nil {
		return Config{}, err
	}
	if !IsSupportedConfigVersion(c.ConfigVersion) {
		return Config{}, unsupportedVersionError(c.ConfigVersion)
	}

	var err error
	if c.Output, err = parseOutputSection(v); err != nil {
		return Config{}, err
	}
	if c.Strict, c.HasStrict, err = optionalBool(v, "strict"); err != nil {
		return Config{}, err
	}
	if c.LogLevel, c.HasLogLevel, err = optionalString(v, "logLevel"); err != nil {
		return Config{}, err
	}
	if c.Aliases, err = parseAliasesSection(v); err != nil {
		return Config{}, err
	}
	if c.Shapes, err = parseShapesSection(v); err != nil {
		return Config{}, err
	}
	return c, nil
}
