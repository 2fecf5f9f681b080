package mappingfile

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/AkiBarry/alias-proxy/internal/domain"
)

// decodeJSONMapping reads a valid JSON document token by token, since
// decoding into a Go map would lose the entry order.
func decodeJSONMapping(content []byte) (domain.Mapping, error) {
	dec := json.NewDecoder(bytes.NewReader(content))

	// Tokens never span lines, so the offset right after a token is on
	// the token's own line.
	line := func() int {
		return bytes.Count(content[:dec.InputOffset()], []byte("\n")) + 1
	}

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("line %d: expected a table of alias -> target, got %s", line(), describeToken(tok))
	}

	mapping := make(domain.Mapping, 0)
	seen := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		alias, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("line %d: alias must be a string, got %s", line(), describeToken(tok))
		}
		aliasLine := line()
		if prev, ok := seen[alias]; ok {
			return nil, fmt.Errorf("line %d: alias %q already defined at line %d", aliasLine, alias, prev)
		}

		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}
		target, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("line %d: target of %q must be a string, got %s", line(), alias, describeToken(tok))
		}

		seen[alias] = aliasLine
		mapping = append(mapping, domain.Entry{Alias: alias, Target: target})
	}

	return mapping, nil
}

func describeToken(tok json.Token) string {
	switch v := tok.(type) {
	case json.Delim:
		if v == '{' {
			return "table"
		}
		return "list"
	case string:
		return "string"
	case float64, json.Number:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", tok)
	}
}
