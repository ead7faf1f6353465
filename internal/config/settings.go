package config

// Settings is the record persisted in the .rn file.
// The YAML keys match files written by earlier rn releases.
type Settings struct {
	Directory string `yaml:"default_dir"`
	Binary    string `yaml:"default_bin"`
	Arguments string `yaml:"default_args"`
}

// Overrides carries optional replacements for Settings fields.
// A nil field was not supplied; a non-nil empty string was supplied as empty.
type Overrides struct {
	Directory *string
	Binary    *string
	Arguments *string
}

// New returns a Settings record with the given defaults.
func New(directory, binary, arguments string) *Settings {
	return &Settings{
		Directory: directory,
		Binary:    binary,
		Arguments: arguments,
	}
}

// Apply replaces each field for which o supplies a value and reports whether anything changed.
func (s *Settings) Apply(o Overrides) bool {
	changed := false
	if o.Directory != nil && *o.Directory != s.Directory {
		s.Directory = *o.Directory
		changed = true
	}
	if o.Binary != nil && *o.Binary != s.Binary {
		s.Binary = *o.Binary
		changed = true
	}
	if o.Arguments != nil && *o.Arguments != s.Arguments {
		s.Arguments = *o.Arguments
		changed = true
	}
	return changed
}

// IsEmpty reports whether no override was supplied.
func (o Overrides) IsEmpty() bool {
	return o.Directory == nil && o.Binary == nil && o.Arguments == nil
}
