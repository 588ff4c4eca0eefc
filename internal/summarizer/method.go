package summarizer

import "fmt"

// Method identifies a summarization strategy.
// It is a closed enum: extractive is the only implemented variant today.
// Future strategies (e.g. abstractive) are added as new constants without
// changing the pipeline's external contract.
type Method string

const (
	// MethodExtractive selects a subset of the document's own sentences,
	// ranked by word-frequency representativeness.
	MethodExtractive Method = "extractive"
)

// DefaultMethod is the method used when a caller does not specify one.
const DefaultMethod = MethodExtractive

// ParseMethod validates a method name received from a caller.
// The empty string resolves to DefaultMethod.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "":
		return DefaultMethod, nil
	case string(MethodExtractive):
		return MethodExtractive, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// String returns the method name.
func (m Method) String() string { return string(m) }
