package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Source is the raw, undecoded configuration: the top-level JSON object of
// the config file with any environment overrides merged in.
//
// Numbers are kept as json.Number so integers can be told apart from
// fractional values.
type Source map[string]any

// ReadSource reads and decodes the JSON object stored at path.
//
// A missing file is not an error: ReadSource returns an empty Source so every
// setting keeps its default. Any other read failure, malformed JSON, or a
// top-level value that is not an object is returned as an error.
func ReadSource(path string) (Source, error) {
	src, _, err := readSource(path)
	return src, err
}

// readSource is ReadSource that also reports whether the file existed.
func readSource(path string) (Source, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Source{}, false, nil
	}
	if err != nil {
		return nil, true, fmt.Errorf("error reading a json file: %w", err)
	}

	src, err := decodeSource(data)
	return src, true, err
}

func decodeSource(data []byte) (Source, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("error decoding json configs: unexpected data after top-level value")
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, &TypeError{Key: "configuration", Want: "a JSON object", Got: kindOf(raw)}
	}
	return Source(obj), nil
}
