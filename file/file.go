/*
File    : lci/file/file.go
*/

// Package file reads expression-language source from disk.
package file

import (
	"fmt"
	"os"
)

// ReadSource reads the full contents of path as a string.
func ReadSource(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read file %q: %w", path, err)
	}
	return string(content), nil
}
