// Package decoder parses manifest documents into generic trees.
package decoder

import (
	"encoding/json"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/domain"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.DocumentDecoder = (*Decoder)(nil)

// Decoder implements ports.DocumentDecoder for TOML, YAML and JSON documents.
// Documents without a recognised extension are read as TOML, the format rustup publishes.
type Decoder struct{}

// New creates a new Decoder.
func New() *Decoder {
	return &Decoder{}
}

// Decode parses data according to the extension of name, ignoring a trailing compression suffix.
func (d *Decoder) Decode(name string, data []byte) (map[string]any, error) {
	base, _, _ := domain.SplitCompression(domain.DocumentName(name))
	ext := strings.ToLower(path.Ext(base))

	tree := make(map[string]any)
	var err error
	switch ext {
	case ".toml", "":
		err = toml.Unmarshal(data, &tree)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &tree)
	case ".json":
		err = json.Unmarshal(data, &tree)
	default:
		return nil, zerr.With(domain.ErrUnsupportedDocument, "extension", ext)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDecodeFailed.Error()), "document", name)
	}
	return tree, nil
}
