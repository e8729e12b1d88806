package domain

// DefaultProfile is the profile installed when none is requested.
const DefaultProfile = "default"

// Request is a user's intent before resolution: where the manifest comes from, which hosts to
// plan for and what to install on each (e.g. from rtm.yaml and command-line flags).
type Request struct {
	// Toolchain names the channel manifest to fetch, e.g. "nightly-2022-11-30".
	// It is ignored when Manifest is set.
	Toolchain string

	// Manifest is a local path or URL of a manifest document.
	Manifest string

	// Hosts to resolve for. When empty, the host of the toolchain name is used.
	Hosts []Triple

	Spec InstallSpec
}

// Merge returns r with every non-zero field of override applied on top.
func (r Request) Merge(override Request) Request {
	if override.Toolchain != "" {
		r.Toolchain = override.Toolchain
		r.Manifest = ""
	}
	if override.Manifest != "" {
		r.Manifest = override.Manifest
	}
	if len(override.Hosts) > 0 {
		r.Hosts = override.Hosts
	}
	if override.Spec.Profile != "" {
		r.Spec.Profile = override.Spec.Profile
	}
	if len(override.Spec.Components) > 0 {
		r.Spec.Components = override.Spec.Components
	}
	if len(override.Spec.Targets) > 0 {
		r.Spec.Targets = override.Spec.Targets
	}
	return r
}

// WithDefaults fills the profile with DefaultProfile when unset.
func (r Request) WithDefaults() Request {
	if r.Spec.Profile == "" {
		r.Spec.Profile = DefaultProfile
	}
	return r
}
