package domain

// PackageRef is a package resolved for one target.
type PackageRef struct {
	Name   string
	Target SupportedTarget
}

// Compare orders refs by package name, then by target.
func (r PackageRef) Compare(other PackageRef) int {
	switch {
	case r.Name < other.Name:
		return -1
	case r.Name > other.Name:
		return 1
	default:
		return r.Target.Compare(other.Target)
	}
}

func (r PackageRef) String() string {
	return r.Name + "@" + r.Target.String()
}

// ComponentNameMap maps every name a user may type on a host to the package it denotes.
type ComponentNameMap map[string]PackageRef

// buildNameMap registers each component under its current name and every legacy alias.
// Target-specific components are reachable as "{name}-{triple}" from any host; components
// usable on host are also reachable by their bare name. Later registrations overwrite.
func buildNameMap(host Triple, components []Component, aliases map[string][]string) ComponentNameMap {
	names := make(ComponentNameMap)
	for _, c := range components {
		ref := PackageRef{Name: c.Package, Target: c.Target}
		for _, name := range append([]string{c.Package}, aliases[c.Package]...) {
			if triple, ok := c.Target.Triple(); ok {
				names[name+"-"+triple.String()] = ref
			}
			if c.Target.Supports(host) {
				names[name] = ref
			}
		}
	}
	return names
}
