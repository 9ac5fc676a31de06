package quiz

import (
	"fmt"
	"os"
	"strings"
)

// Source describes where an input document comes from.
type Source struct {
	// Name is used in error messages to give more context about the document.
	Name string
	// Value is an inline document provided via configuration or flags.
	Value string
	// File points to a file containing the document. When set it takes
	// precedence over Value.
	File string
}

// Read returns the document contents. When File is set it takes precedence over
// Value. An error is returned when neither File nor Value contain anything usable.
func (src Source) Read() (string, error) {
	name := src.name()

	file := strings.TrimSpace(src.File)
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		if strings.TrimSpace(string(data)) == "" {
			return "", fmt.Errorf("%s file %q is empty", name, file)
		}
		return string(data), nil
	}

	if strings.TrimSpace(src.Value) == "" {
		return "", fmt.Errorf("%s is not configured", name)
	}

	return src.Value, nil
}

func (src Source) name() string {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "document"
	}
	return name
}

func (src Source) origin() string {
	if file := strings.TrimSpace(src.File); file != "" {
		return fmt.Sprintf("%s %q", src.name(), file)
	}
	return src.name()
}
