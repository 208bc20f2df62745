package registry

import "gopkg.in/yaml.v3"

// Manifest is a serializable snapshot of a registry: which pathway names a
// contract type declares, which of them are implemented, and what guards,
// gates and schemas they carry. It is meant for introspection and diagnostics
// tooling; the compiler consumes the typed surface instead.
type Manifest struct {
	Transitions []PathwayInfo  `yaml:"transitions" json:"transitions"`
	Terminals   []TerminalInfo `yaml:"terminals" json:"terminals"`
	Updatables  []PathwayInfo  `yaml:"updatables" json:"updatables"`
}

// PathwayInfo describes one transition or updatable declaration.
type PathwayInfo struct {
	Name          string      `yaml:"name" json:"name"`
	Present       bool        `yaml:"present" json:"present"`
	Guards        []GuardInfo `yaml:"guards,omitempty" json:"guards,omitempty"`
	Gates         []string    `yaml:"gates,omitempty" json:"gates,omitempty"`
	SchemaExposed bool        `yaml:"schema_exposed,omitempty" json:"schema_exposed,omitempty"`
}

// GuardInfo describes a guard reference and its caching policy.
type GuardInfo struct {
	Name   string `yaml:"name" json:"name"`
	Policy string `yaml:"policy" json:"policy"`
}

// TerminalInfo describes one terminal declaration.
type TerminalInfo struct {
	Name    string `yaml:"name" json:"name"`
	Present bool   `yaml:"present" json:"present"`
	Policy  string `yaml:"policy,omitempty" json:"policy,omitempty"`
}

// Manifest builds the introspection snapshot, in declaration order.
func (r *Registry[C, S]) Manifest() Manifest {
	m := Manifest{}

	for _, e := range r.transitions {
		info := PathwayInfo{Name: e.name, Present: e.present}
		if e.present {
			for _, g := range e.decl.Guards() {
				info.Guards = append(info.Guards, GuardInfo{Name: g.Name(), Policy: g.Policy().String()})
			}
			for _, g := range e.decl.Gates() {
				info.Gates = append(info.Gates, g.Name())
			}
		}
		m.Transitions = append(m.Transitions, info)
	}

	for _, e := range r.terminals {
		info := TerminalInfo{Name: e.name, Present: e.present}
		if e.present {
			info.Policy = e.decl.Policy().String()
		}
		m.Terminals = append(m.Terminals, info)
	}

	for _, e := range r.updatables {
		info := PathwayInfo{Name: e.name, Present: e.present}
		if e.present {
			for _, g := range e.decl.Guards() {
				info.Guards = append(info.Guards, GuardInfo{Name: g.Name(), Policy: g.Policy().String()})
			}
			for _, g := range e.decl.Gates() {
				info.Gates = append(info.Gates, g.Name())
			}
			info.SchemaExposed = e.decl.Schema() != nil
		}
		m.Updatables = append(m.Updatables, info)
	}

	return m
}

// YAML renders the manifest for human inspection.
func (m Manifest) YAML() ([]byte, error) {
	return yaml.Marshal(m)
}
