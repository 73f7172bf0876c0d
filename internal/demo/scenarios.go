package demo

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenarios is the query list walked by the intent-recognition demo.
type Scenarios struct {
	Queries []string `yaml:"queries"`
}

// DefaultScenarios returns the built-in walkthrough, one query per intent
// the chatbot recognizes.
func DefaultScenarios() *Scenarios {
	return &Scenarios{
		Queries: []string{
			"Show me issues in the last 3 hours",
			"What critical alerts do we have?",
			"Any pod crashes recently?",
			"Tell me about service issues",
			"What resource problems are there?",
			"Show me trends in the past week",
			"Generate a fix for the crashing pod",
		},
	}
}

// LoadScenarios loads a scenario file, falling back to the built-in list
// when no path is given or the file does not exist.
func LoadScenarios(path string) (*Scenarios, error) {
	if path == "" {
		return DefaultScenarios(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultScenarios(), nil
		}
		return nil, fmt.Errorf("error opening scenario file: %w", err)
	}
	defer f.Close()

	return ReadScenarios(f)
}

// ReadScenarios parses scenarios from an io.Reader.
func ReadScenarios(r io.Reader) (*Scenarios, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading scenario data: %w", err)
	}

	var s Scenarios
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("error parsing scenario YAML: %w", err)
	}
	if len(s.Queries) == 0 {
		return DefaultScenarios(), nil
	}
	return &s, nil
}
