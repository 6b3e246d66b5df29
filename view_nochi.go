//go:build nochi

// Built with -tags nochi: no host framework integration, the static view is absent.

package treibstoff

import "github.com/conestack/treibstoff/resource"

const hostFramework = ""

func newStaticView(*resource.Library) *StaticView {
	return nil
}
