package ports

// Hasher defines the interface for computing content hashes.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// Sum returns the hex hash of data.
	Sum(data []byte) string
	// Key returns a stable hex key for an arbitrary string such as a URL.
	Key(s string) string
}
