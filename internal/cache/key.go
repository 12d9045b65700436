package cache

// KeySeparator joins a file id and its variant in a cache key
const KeySeparator = ":"

// Key builds the cache key for a file id and optional variant.
// Without a variant the key is the file id itself.
func Key(fileID, variant string) string {
	if variant == "" {
		return fileID
	}
	return fileID + KeySeparator + variant
}
