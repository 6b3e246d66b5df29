// Package treibstoff declares the treibstoff JavaScript bundle and stylesheet
// as resources of the process-wide registry and, when a host web framework
// integration is compiled in, exposes their directory through a static view.
//
// Importing the package is enough: the declaration runs once during package
// initialization.
//
//	import _ "github.com/conestack/treibstoff"
package treibstoff

import (
	"fmt"
	"log/slog"

	"github.com/conestack/treibstoff/resource"
	"github.com/conestack/treibstoff/web"
)

const (
	// LibraryName is the registry name of the asset group.
	LibraryName = "treibstoff"

	// MountPath is the URL subpath the asset directory is published under.
	MountPath = "treibstoff-static"

	// ScriptName is the registry name of the JavaScript bundle.
	ScriptName = "treibstoff-js"

	// StyleName is the registry name of the stylesheet.
	StyleName = "treibstoff-css"

	// JQueryDependency is the resource the script depends on.
	JQueryDependency = "jquery"

	// BootstrapDependency is the resource the stylesheet depends on.
	BootstrapDependency = "bootstrap-css"
)

var (
	// Library is the treibstoff asset group backed by the embedded static/ directory.
	Library = resource.NewLibrary(LibraryName, MountPath, web.Static())

	// Script is the JavaScript bundle.
	Script = resource.NewScript(Library, ScriptName, JQueryDependency,
		"treibstoff.bundle.js", "treibstoff.bundle.min.js")

	// Style is the stylesheet.
	Style = resource.NewStyle(Library, StyleName, BootstrapDependency,
		"treibstoff.css", "treibstoff.min.css")
)

// view is probed once in init and never reassigned.
var view *StaticView

func init() {
	if err := Declare(resource.Default); err != nil {
		slog.Error("treibstoff resources not declared", "error", err)
	}

	view = newStaticView(Library)
	if view == nil {
		slog.Debug("no host framework compiled in, static view disabled")
	}
}

// Declare registers the library, script and style into reg. Calling it again
// on the same registry changes nothing.
func Declare(reg *resource.Registry) error {
	if err := reg.RegisterLibrary(Library); err != nil {
		return fmt.Errorf("declare %s: %w", LibraryName, err)
	}
	for _, res := range []*resource.Resource{Script, Style} {
		if err := reg.RegisterResource(res); err != nil {
			return fmt.Errorf("declare %s: %w", res.Name, err)
		}
	}
	return nil
}

// View returns the static view of the asset directory, or nil when no host
// framework integration is compiled in.
func View() *StaticView {
	return view
}

// HostFramework names the compiled-in host framework integration. It is empty
// when View returns nil.
func HostFramework() string {
	return hostFramework
}
