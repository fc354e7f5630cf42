package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LexiconFile is the YAML shape of an on-disk synonym dictionary:
//
//	synonyms:
//	  quick: [fast, rapid, speedy]
//	  slow: [sluggish, unhurried]
type LexiconFile struct {
	Synonyms map[string][]string `yaml:"synonyms"`
}

// LoadLexicon reads a YAML synonym file. A missing file is not an error; it
// returns an empty map so the built-in thesaurus still applies.
func LoadLexicon(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string][]string{}, nil
		}
		return nil, fmt.Errorf("read lexicon file %s: %w", path, err)
	}

	var file LexiconFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse lexicon file %s: %w", path, err)
	}
	if file.Synonyms == nil {
		file.Synonyms = map[string][]string{}
	}
	return file.Synonyms, nil
}
