// Package buildinfo carries the package metadata of the treibstoff module.
package buildinfo

import "runtime/debug"

const (
	Name        = "treibstoff"
	Description = "Javascript Foundations for Cone"
	License     = "Simplified BSD"
	URL         = "https://github.com/conestack/treibstoff"
)

// Version is set at build time via -ldflags
// "-X github.com/conestack/treibstoff/internal/buildinfo.Version=1.0.0".
var Version = "0.0.dev0"

// Info is the metadata reported by the version command and the manifest.
type Info struct {
	Name          string `json:"name" yaml:"name"`
	Version       string `json:"version" yaml:"version"`
	Description   string `json:"description" yaml:"description"`
	License       string `json:"license" yaml:"license"`
	URL           string `json:"url" yaml:"url"`
	ModuleVersion string `json:"module_version,omitempty" yaml:"module_version,omitempty"`
}

// Get returns the current build metadata.
func Get() Info {
	return Info{
		Name:          Name,
		Version:       Version,
		Description:   Description,
		License:       License,
		URL:           URL,
		ModuleVersion: ModuleVersion(),
	}
}

// ModuleVersion returns the module version embedded by the Go toolchain (when available).
func ModuleVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return ""
}
