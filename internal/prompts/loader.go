// Package prompts provides externalized LLM prompt templates, stored as JSON
// and embedded at compile time.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

var (
	loadOnce sync.Once
	loaded   map[string]string
	loadErr  error
)

// load parses every embedded prompt file into a flat key -> template map.
func load() (map[string]string, error) {
	loadOnce.Do(func() {
		loaded = make(map[string]string)
		entries, err := promptFiles.ReadDir(".")
		if err != nil {
			loadErr = fmt.Errorf("failed to read embedded prompts: %w", err)
			return
		}
		for _, entry := range entries {
			data, err := promptFiles.ReadFile(entry.Name())
			if err != nil {
				loadErr = fmt.Errorf("failed to read prompt file %s: %w", entry.Name(), err)
				return
			}
			var prompts map[string]string
			if err := json.Unmarshal(data, &prompts); err != nil {
				loadErr = fmt.Errorf("failed to parse prompt file %s: %w", entry.Name(), err)
				return
			}
			for key, template := range prompts {
				loaded[key] = template
			}
		}
	})
	return loaded, loadErr
}

// Get retrieves a prompt template by key.
func Get(key string) (string, error) {
	prompts, err := load()
	if err != nil {
		return "", err
	}
	template, exists := prompts[key]
	if !exists {
		return "", fmt.Errorf("prompt key %q not found", key)
	}
	return template, nil
}

// MustGet retrieves a prompt template by key, panicking if not found. Use for
// prompts that are required at initialization time.
func MustGet(key string) string {
	template, err := Get(key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return template
}

// Format replaces template placeholders in the form {{.Key}} with values
// from data.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}
