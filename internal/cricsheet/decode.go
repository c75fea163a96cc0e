package cricsheet

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalidFeed indicates the raw feed does not satisfy the match schema.
var ErrInvalidFeed = errors.New("cricsheet: feed does not match schema")

// schemaFile is the embedded schema path.
const schemaFile = "schema/match-schema.json"

//go:embed schema/match-schema.json
var schemaFS embed.FS

// Validate checks raw feed bytes against the embedded match schema.
// The returned error joins every schema violation into one message.
func Validate(raw []byte) error {
	schemaBytes, err := schemaFS.ReadFile(schemaFile)
	if err != nil {
		return fmt.Errorf("read embedded schema: %w", err)
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)
	feedLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, feedLoader)
	if err != nil {
		return fmt.Errorf("validate feed: %w", err)
	}

	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, verr := range result.Errors() {
		details = append(details, fmt.Sprintf("%s: %s", verr.Field(), verr.Description()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidFeed, strings.Join(details, "; "))
}

// DecodeMatch validates and decodes one raw match feed.
func DecodeMatch(raw []byte) (*MatchData, error) {
	validateErr := Validate(raw)
	if validateErr != nil {
		return nil, validateErr
	}

	var data MatchData

	decodeErr := json.Unmarshal(raw, &data)
	if decodeErr != nil {
		return nil, fmt.Errorf("decode feed: %w", decodeErr)
	}

	return &data, nil
}
