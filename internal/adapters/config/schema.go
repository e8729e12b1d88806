package config

// Requestfile represents the structure of the rtm.yaml request file.
type Requestfile struct {
	Version    string   `yaml:"version"`
	Toolchain  string   `yaml:"toolchain"`
	Manifest   string   `yaml:"manifest"`
	Hosts      []string `yaml:"hosts"`
	Profile    string   `yaml:"profile"`
	Components []string `yaml:"components"`
	Targets    []string `yaml:"targets"`
}

// SupportedVersion is the only request file version understood by the loader.
const SupportedVersion = "1"
