package lexicon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML lexicon and validates it.
func Parse(data []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("decoding lexicon: %w", err)
	}
	if err := lex.Validate(); err != nil {
		return nil, err
	}
	return &lex, nil
}

// LoadFile reads and validates a YAML lexicon file.
func LoadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lexicon %s: %w", path, err)
	}
	lex, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading lexicon %s: %w", path, err)
	}
	return lex, nil
}

// Marshal encodes the lexicon as YAML.
func Marshal(lex *Lexicon) ([]byte, error) {
	data, err := yaml.Marshal(lex)
	if err != nil {
		return nil, fmt.Errorf("encoding lexicon: %w", err)
	}
	return data, nil
}

// WriteFile validates the lexicon and writes it as YAML.
func WriteFile(path string, lex *Lexicon) error {
	if err := lex.Validate(); err != nil {
		return err
	}
	data, err := Marshal(lex)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing lexicon %s: %w", path, err)
	}
	return nil
}
