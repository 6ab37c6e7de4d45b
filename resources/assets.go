// Package resources embeds the application icons.
package resources

import (
	"embed"
	"fmt"
	"path"
	"sync"

	"fyne.io/fyne/v2"
)

//go:embed logo/*.svg
var logoFS embed.FS

var logoCache sync.Map

// Logo returns the embedded icon with the given file name.
func Logo(fileName string) (fyne.Resource, error) {
	fullPath := path.Join("logo", fileName)
	if cached, ok := logoCache.Load(fullPath); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := logoFS.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", fullPath, err)
	}

	resource, _ := logoCache.LoadOrStore(fullPath, fyne.NewStaticResource(fileName, data))
	return resource.(fyne.Resource), nil
}

// MustLogo returns the embedded icon or panics when it is missing.
func MustLogo(fileName string) fyne.Resource {
	resource, err := Logo(fileName)
	if err != nil {
		panic(err)
	}
	return resource
}
