package ports

// DocumentDecoder defines the interface for turning manifest bytes into a generic tree.
//
//go:generate mockgen -source=decoder.go -destination=mocks/mock_decoder.go -package=mocks
type DocumentDecoder interface {
	// Decode parses data. The name selects the format by its extension.
	Decode(name string, data []byte) (map[string]any, error)
}
