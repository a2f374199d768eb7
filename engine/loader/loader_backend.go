package loader

// loaderBackend decodes a fetched payload into a Typeface.
// Concrete implementations handle format-specific details.
type loaderBackend interface {
	// Parse decodes the payload.
	//
	// Parameters:
	//   - data: the raw asset bytes
	//
	// Returns:
	//   - *Typeface: the decoded typeface
	//   - error: error if the payload cannot be decoded
	Parse(data []byte) (*Typeface, error)
}

// typefaceJSONBackend parses the three.js typeface JSON format.
type typefaceJSONBackend struct{}

var _ loaderBackend = typefaceJSONBackend{}

func newTypefaceJSONBackend() loaderBackend {
	return typefaceJSONBackend{}
}

func (typefaceJSONBackend) Parse(data []byte) (*Typeface, error) {
	return ParseTypeface(data)
}
