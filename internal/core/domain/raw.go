package domain

import (
	"fmt"
	"maps"
	"slices"
	"time"
)

// RawManifest is the direct typing of a decoded v2 channel manifest.
// It validates structure only; semantic checks happen in NewManifest.
type RawManifest struct {
	ManifestVersion string
	Date            time.Time
	Profiles        map[string][]string
	// Renames maps a legacy component name to its current name.
	Renames   map[string]string
	Artifacts map[string]RawArtifact
	Packages  map[string]RawPackage
}

// RawPackage is one entry of the "pkg" table.
type RawPackage struct {
	Version       *string
	GitCommitHash *Digest
	Targets       map[string]RawPackageBuild
}

// RawPackageBuild is the build record of a package for one target key.
type RawPackageBuild struct {
	Available  bool
	Artifacts  map[Compression]RawArtifactRef
	Components []RawComponent
	Extensions []RawComponent
}

// RawArtifactRef is a download location with its SHA-256 hash.
type RawArtifactRef struct {
	URL  string
	Hash Digest
}

// RawComponent names a package and target as written in the manifest.
type RawComponent struct {
	Package string
	Target  string
}

// RawArtifact is one entry of the top-level "artifacts" table.
type RawArtifact struct {
	Targets map[string][]RawArtifactRef
}

// compressionFields lists the url/hash keys of each compression kind inside a build record.
var compressionFields = []struct {
	kind Compression
	url  string
	hash string
}{
	{CompressionGzip, "url", "hash"},
	{CompressionXz, "xz_url", "xz_hash"},
	{CompressionZstd, "zst_url", "zst_hash"},
}

// DecodeRawManifest types a generic decoded document (maps, lists and scalars, as produced by a
// TOML or YAML decoder) as a RawManifest.
func DecodeRawManifest(tree map[string]any) (*RawManifest, error) {
	if err := checkKeys("", tree, "manifest-version", "date", "profiles", "renames", "artifacts", "pkg"); err != nil {
		return nil, err
	}

	raw := &RawManifest{
		Profiles:  make(map[string][]string),
		Renames:   make(map[string]string),
		Artifacts: make(map[string]RawArtifact),
		Packages:  make(map[string]RawPackage),
	}

	version, err := requireKey("", tree, "manifest-version")
	if err != nil {
		return nil, err
	}
	if raw.ManifestVersion, err = asString("manifest-version", version); err != nil {
		return nil, err
	}

	date, err := requireKey("", tree, "date")
	if err != nil {
		return nil, err
	}
	if raw.Date, err = asDate("date", date); err != nil {
		return nil, err
	}

	if v, ok := tree["profiles"]; ok {
		if raw.Profiles, err = decodeProfiles(v); err != nil {
			return nil, err
		}
	}
	if v, ok := tree["renames"]; ok {
		if raw.Renames, err = decodeRenames(v); err != nil {
			return nil, err
		}
	}
	if v, ok := tree["artifacts"]; ok {
		if raw.Artifacts, err = decodeArtifacts(v); err != nil {
			return nil, err
		}
	}

	pkgs, err := requireKey("", tree, "pkg")
	if err != nil {
		return nil, err
	}
	if raw.Packages, err = decodePackages(pkgs); err != nil {
		return nil, err
	}

	return raw, nil
}

func decodeProfiles(v any) (map[string][]string, error) {
	table, err := asTable("profiles", v)
	if err != nil {
		return nil, err
	}
	profiles := make(map[string][]string, len(table))
	for _, name := range sortedKeys(table) {
		path := "profiles." + name
		list, err := asList(path, table[name])
		if err != nil {
			return nil, err
		}
		components := make([]string, 0, len(list))
		for i, item := range list {
			s, err := asString(fmt.Sprintf("%s[%d]", path, i), item)
			if err != nil {
				return nil, err
			}
			components = append(components, s)
		}
		profiles[name] = components
	}
	return profiles, nil
}

func decodeRenames(v any) (map[string]string, error) {
	table, err := asTable("renames", v)
	if err != nil {
		return nil, err
	}
	renames := make(map[string]string, len(table))
	for _, from := range sortedKeys(table) {
		path := "renames." + from
		entry, err := asTable(path, table[from])
		if err != nil {
			return nil, err
		}
		if err := checkKeys(path, entry, "to"); err != nil {
			return nil, err
		}
		to, err := requireKey(path, entry, "to")
		if err != nil {
			return nil, err
		}
		if renames[from], err = asString(path+".to", to); err != nil {
			return nil, err
		}
	}
	return renames, nil
}

func decodeArtifacts(v any) (map[string]RawArtifact, error) {
	table, err := asTable("artifacts", v)
	if err != nil {
		return nil, err
	}
	artifacts := make(map[string]RawArtifact, len(table))
	for _, name := range sortedKeys(table) {
		path := "artifacts." + name
		entry, err := asTable(path, table[name])
		if err != nil {
			return nil, err
		}
		if err := checkKeys(path, entry, "target"); err != nil {
			return nil, err
		}
		targetsValue, err := requireKey(path, entry, "target")
		if err != nil {
			return nil, err
		}
		targets, err := asTable(path+".target", targetsValue)
		if err != nil {
			return nil, err
		}

		artifact := RawArtifact{Targets: make(map[string][]RawArtifactRef, len(targets))}
		for _, target := range sortedKeys(targets) {
			targetPath := path + ".target." + target
			list, err := asList(targetPath, targets[target])
			if err != nil {
				return nil, err
			}
			refs := make([]RawArtifactRef, 0, len(list))
			for i, item := range list {
				ref, err := decodeArtifactBuild(fmt.Sprintf("%s[%d]", targetPath, i), item)
				if err != nil {
					return nil, err
				}
				refs = append(refs, ref)
			}
			artifact.Targets[target] = refs
		}
		artifacts[name] = artifact
	}
	return artifacts, nil
}

func decodeArtifactBuild(path string, v any) (RawArtifactRef, error) {
	table, err := asTable(path, v)
	if err != nil {
		return RawArtifactRef{}, err
	}
	if err := checkKeys(path, table, "hash-sha256", "url"); err != nil {
		return RawArtifactRef{}, err
	}
	hashValue, err := requireKey(path, table, "hash-sha256")
	if err != nil {
		return RawArtifactRef{}, err
	}
	hash, err := asDigest(path+".hash-sha256", hashValue)
	if err != nil {
		return RawArtifactRef{}, err
	}
	urlValue, err := requireKey(path, table, "url")
	if err != nil {
		return RawArtifactRef{}, err
	}
	url, err := asString(path+".url", urlValue)
	if err != nil {
		return RawArtifactRef{}, err
	}
	return RawArtifactRef{URL: url, Hash: hash}, nil
}

func decodePackages(v any) (map[string]RawPackage, error) {
	table, err := asTable("pkg", v)
	if err != nil {
		return nil, err
	}
	packages := make(map[string]RawPackage, len(table))
	for _, name := range sortedKeys(table) {
		pkg, err := decodePackage("pkg."+name, table[name])
		if err != nil {
			return nil, err
		}
		packages[name] = pkg
	}
	return packages, nil
}

func decodePackage(path string, v any) (RawPackage, error) {
	table, err := asTable(path, v)
	if err != nil {
		return RawPackage{}, err
	}
	if err := checkKeys(path, table, "version", "git_commit_hash", "target"); err != nil {
		return RawPackage{}, err
	}

	var pkg RawPackage
	if value, ok := table["version"]; ok {
		version, err := asString(path+".version", value)
		if err != nil {
			return RawPackage{}, err
		}
		pkg.Version = &version
	}
	if value, ok := table["git_commit_hash"]; ok {
		commit, err := asDigest(path+".git_commit_hash", value)
		if err != nil {
			return RawPackage{}, err
		}
		pkg.GitCommitHash = &commit
	}

	targetsValue, err := requireKey(path, table, "target")
	if err != nil {
		return RawPackage{}, err
	}
	targets, err := asTable(path+".target", targetsValue)
	if err != nil {
		return RawPackage{}, err
	}
	pkg.Targets = make(map[string]RawPackageBuild, len(targets))
	for _, target := range sortedKeys(targets) {
		build, err := decodePackageBuild(path+".target."+target, targets[target])
		if err != nil {
			return RawPackage{}, err
		}
		pkg.Targets[target] = build
	}
	return pkg, nil
}

func decodePackageBuild(path string, v any) (RawPackageBuild, error) {
	table, err := asTable(path, v)
	if err != nil {
		return RawPackageBuild{}, err
	}
	allowed := []string{"available", "components", "extensions"}
	for _, f := range compressionFields {
		allowed = append(allowed, f.url, f.hash)
	}
	if err := checkKeys(path, table, allowed...); err != nil {
		return RawPackageBuild{}, err
	}

	var build RawPackageBuild
	availableValue, err := requireKey(path, table, "available")
	if err != nil {
		return RawPackageBuild{}, err
	}
	if build.Available, err = asBool(path+".available", availableValue); err != nil {
		return RawPackageBuild{}, err
	}

	for _, f := range compressionFields {
		urlValue, hasURL := table[f.url]
		hashValue, hasHash := table[f.hash]
		if !hasURL && !hasHash {
			continue
		}
		if !hasURL {
			return RawPackageBuild{}, structuralError(path+"."+f.url, "missing url for %s", f.hash)
		}
		if !hasHash {
			return RawPackageBuild{}, structuralError(path+"."+f.hash, "missing hash for %s", f.url)
		}
		url, err := asString(path+"."+f.url, urlValue)
		if err != nil {
			return RawPackageBuild{}, err
		}
		hash, err := asDigest(path+"."+f.hash, hashValue)
		if err != nil {
			return RawPackageBuild{}, err
		}
		if build.Artifacts == nil {
			build.Artifacts = make(map[Compression]RawArtifactRef, len(compressionFields))
		}
		build.Artifacts[f.kind] = RawArtifactRef{URL: url, Hash: hash}
	}

	if value, ok := table["components"]; ok {
		if build.Components, err = decodeComponents(path+".components", value); err != nil {
			return RawPackageBuild{}, err
		}
	}
	if value, ok := table["extensions"]; ok {
		if build.Extensions, err = decodeComponents(path+".extensions", value); err != nil {
			return RawPackageBuild{}, err
		}
	}
	return build, nil
}

func decodeComponents(path string, v any) ([]RawComponent, error) {
	list, err := asList(path, v)
	if err != nil {
		return nil, err
	}
	components := make([]RawComponent, 0, len(list))
	for i, item := range list {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		table, err := asTable(itemPath, item)
		if err != nil {
			return nil, err
		}
		if err := checkKeys(itemPath, table, "pkg", "target"); err != nil {
			return nil, err
		}
		pkgValue, err := requireKey(itemPath, table, "pkg")
		if err != nil {
			return nil, err
		}
		pkg, err := asString(itemPath+".pkg", pkgValue)
		if err != nil {
			return nil, err
		}
		targetValue, err := requireKey(itemPath, table, "target")
		if err != nil {
			return nil, err
		}
		target, err := asString(itemPath+".target", targetValue)
		if err != nil {
			return nil, err
		}
		components = append(components, RawComponent{Package: pkg, Target: target})
	}
	return components, nil
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

func checkKeys(path string, table map[string]any, allowed ...string) error {
	for _, key := range sortedKeys(table) {
		if !slices.Contains(allowed, key) {
			return structuralError(joinPath(path, key), "unexpected key")
		}
	}
	return nil
}

func requireKey(path string, table map[string]any, key string) (any, error) {
	v, ok := table[key]
	if !ok {
		return nil, structuralError(joinPath(path, key), "missing required field")
	}
	return v, nil
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

func typeName(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%T", v)
}

func asTable(path string, v any) (map[string]any, error) {
	switch t := v.(type) {
	case map[string]any:
		return t, nil
	case map[any]any:
		// Some YAML decoders produce untyped keys; only string keys are meaningful here.
		out := make(map[string]any, len(t))
		for k, val := range t {
			key, ok := k.(string)
			if !ok {
				return nil, structuralError(path, "expected string keys, found %s", typeName(k))
			}
			out[key] = val
		}
		return out, nil
	default:
		return nil, structuralError(path, "expected table, found %s", typeName(v))
	}
}

func asList(path string, v any) ([]any, error) {
	switch t := v.(type) {
	case []any:
		return t, nil
	case []map[string]any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = t[i]
		}
		return out, nil
	case []string:
		out := make([]any, len(t))
		for i := range t {
			out[i] = t[i]
		}
		return out, nil
	default:
		return nil, structuralError(path, "expected array, found %s", typeName(v))
	}
}

func asString(path string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", structuralError(path, "expected string, found %s", typeName(v))
	}
	return s, nil
}

func asBool(path string, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, structuralError(path, "expected boolean, found %s", typeName(v))
	}
	return b, nil
}

func asDigest(path string, v any) (Digest, error) {
	s, err := asString(path, v)
	if err != nil {
		return Digest{}, err
	}
	d, err := ParseDigest(s)
	if err != nil {
		return Digest{}, structuralError(path, "%v", err)
	}
	return d, nil
}

func asDate(path string, v any) (time.Time, error) {
	switch t := v.(type) {
	case string:
		date, err := time.Parse(DateLayout, t)
		if err != nil {
			return time.Time{}, structuralError(path, "invalid date %q", t)
		}
		return date, nil
	case time.Time:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	default:
		return time.Time{}, structuralError(path, "expected date, found %s", typeName(v))
	}
}
