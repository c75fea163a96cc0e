// Package persist stores replayed matches as entity-tagged records:
// every entity carries a kind tag plus its essential fields only, and
// decoding rebuilds all derived state (outcome symbols, extras splits,
// titles) by recomputation. Records can be written as plain JSON or as
// LZ4-framed JSON.
package persist

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pierrec/lz4/v4"
)

// File extensions for supported codecs.
const (
	jsonExtension = ".json"
	lz4Extension  = ".json.lz4"
)

// Default indentation for pretty-printed JSON.
const defaultIndent = "  "

// Codec defines how a record is serialized and deserialized.
type Codec interface {
	// Encode writes the record to the writer.
	Encode(w io.Writer, record any) error
	// Decode reads the record from the reader.
	Decode(r io.Reader, record any) error
	// Extension returns the file extension for this codec.
	Extension() string
}

// JSONCodec implements Codec using JSON encoding with optional indentation.
type JSONCodec struct {
	// Indent specifies the indentation string. Empty string means compact JSON.
	Indent string
}

// NewJSONCodec creates a JSON codec with pretty-printing (2-space indent).
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{Indent: defaultIndent}
}

// Encode implements Codec.Encode using JSON encoding.
func (c *JSONCodec) Encode(w io.Writer, record any) error {
	encoder := json.NewEncoder(w)
	if c.Indent != "" {
		encoder.SetIndent("", c.Indent)
	}

	err := encoder.Encode(record)
	if err != nil {
		return fmt.Errorf("json encode: %w", err)
	}

	return nil
}

// Decode implements Codec.Decode using JSON decoding.
func (c *JSONCodec) Decode(r io.Reader, record any) error {
	decoder := json.NewDecoder(r)

	err := decoder.Decode(record)
	if err != nil {
		return fmt.Errorf("json decode: %w", err)
	}

	return nil
}

// Extension implements Codec.Extension for JSON files.
func (c *JSONCodec) Extension() string {
	return jsonExtension
}

// LZ4Codec implements Codec as LZ4-framed compact JSON.
type LZ4Codec struct{}

// NewLZ4Codec creates an LZ4 codec.
func NewLZ4Codec() *LZ4Codec {
	return &LZ4Codec{}
}

// Encode implements Codec.Encode: compact JSON through an LZ4 frame.
func (c *LZ4Codec) Encode(w io.Writer, record any) error {
	zw := lz4.NewWriter(w)

	err := json.NewEncoder(zw).Encode(record)
	if err != nil {
		return fmt.Errorf("lz4 encode: %w", err)
	}

	err = zw.Close()
	if err != nil {
		return fmt.Errorf("lz4 close: %w", err)
	}

	return nil
}

// Decode implements Codec.Decode for LZ4-framed JSON.
func (c *LZ4Codec) Decode(r io.Reader, record any) error {
	err := json.NewDecoder(lz4.NewReader(r)).Decode(record)
	if err != nil {
		return fmt.Errorf("lz4 decode: %w", err)
	}

	return nil
}

// Extension implements Codec.Extension for LZ4-compressed files.
func (c *LZ4Codec) Extension() string {
	return lz4Extension
}

// SaveRecord writes a record to a file in the specified directory. The
// filename is the basename plus the codec's extension.
func SaveRecord(dir, basename string, codec Codec, record any) error {
	filename := basename + codec.Extension()
	path := filepath.Join(dir, filename)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create record file: %w", err)
	}
	defer file.Close()

	err = codec.Encode(file, record)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	return nil
}

// LoadRecord reads a record from a file in the specified directory. The
// record parameter must be a pointer to the target struct.
func LoadRecord(dir, basename string, codec Codec, record any) error {
	filename := basename + codec.Extension()
	path := filepath.Join(dir, filename)

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open record file: %w", err)
	}
	defer file.Close()

	err = codec.Decode(file, record)
	if err != nil {
		return fmt.Errorf("decode record: %w", err)
	}

	return nil
}
