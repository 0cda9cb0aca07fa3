package debug

import (
	"fmt"

	"github.com/buger/jsonparser"
)

// FieldString reads a string value at keys out of a recorded golden JSON
// document without unmarshalling the whole tree, grounded on
// buger/jsonparser's non-allocating scan (SPEC_FULL.md §4.10). Intended
// for golden-file snapshot tests asserting on one or two fields of a
// Dump output rather than a full structural diff.
func FieldString(golden []byte, keys ...string) (string, error) {
	v, err := jsonparser.GetString(golden, keys...)
	if err != nil {
		return "", fmt.Errorf("reading %v from golden dump: %w", keys, err)
	}
	return v, nil
}

// ArrayLen reports the length of the JSON array found at keys.
func ArrayLen(golden []byte, keys ...string) (int, error) {
	n := 0
	_, err := jsonparser.ArrayEach(golden, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		n++
	}, keys...)
	if err != nil {
		return 0, fmt.Errorf("reading array %v from golden dump: %w", keys, err)
	}
	return n, nil
}
