package config

const (
	// MinURLIDPrefixLength is the shortest url id that may stand in for a
	// document id. A path segment at least this long is read as a document
	// id followed by a slug. Shorter url ids would collide with path keys.
	MinURLIDPrefixLength = 12

	// MaxURLLength bounds URLs accepted by the decode endpoint. Browsers
	// start truncating around this size.
	MaxURLLength = 8192

	// MaxDocumentNameLength is the maximum length for document names
	// accepted when computing slugs.
	MaxDocumentNameLength = 255
)
