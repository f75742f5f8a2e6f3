// Package easing provides the catalog of easing curves used to shape
// transition speed. Every catalog function maps t in [0,1] to an eased
// value in [0,1] with f(0)=0 and f(1)=1.
package easing

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Func maps normalized time to eased progress. User-supplied functions
// are accepted as-is; their range is not validated.
type Func func(t float64) float64

// ErrUnknown reports an easing name outside the catalog.
var ErrUnknown = errors.New("unknown easing")

// Catalog names.
const (
	Linear        = "linear"
	InQuad        = "ease-in-quad"
	OutQuad       = "ease-out-quad"
	InOutQuad     = "ease-in-out-quad"
	InCubic       = "ease-in-cubic"
	OutCubic      = "ease-out-cubic"
	InOutCubic    = "ease-in-out-cubic"
	InSine        = "ease-in-sine"
	OutSine       = "ease-out-sine"
	InOutSine     = "ease-in-out-sine"
	DefaultEasing = InOutQuad
)

var catalog = map[string]Func{
	Linear:  func(t float64) float64 { return t },
	InQuad:  func(t float64) float64 { return t * t },
	OutQuad: func(t float64) float64 { return 1 - (1-t)*(1-t) },
	InOutQuad: func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - 2*(1-t)*(1-t)
	},
	InCubic:  func(t float64) float64 { return t * t * t },
	OutCubic: func(t float64) float64 { u := 1 - t; return 1 - u*u*u },
	// Standard piecewise cubic, continuous and monotonic at t=0.5.
	InOutCubic: func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		u := 1 - t
		return 1 - 4*u*u*u
	},
	InSine:    func(t float64) float64 { return 1 - math.Cos(t*math.Pi/2) },
	OutSine:   func(t float64) float64 { return math.Sin(t * math.Pi / 2) },
	InOutSine: func(t float64) float64 { return -(math.Cos(math.Pi*t) - 1) / 2 },
}

// Easing selects a curve either by catalog name or as a user-supplied
// function. The zero value resolves to the default curve.
type Easing struct {
	name string
	fn   Func
}

// ByName selects a catalog curve. The name is validated at Resolve.
func ByName(name string) Easing {
	return Easing{name: name}
}

// ByFunc wraps a user-supplied curve.
func ByFunc(fn Func) Easing {
	return Easing{fn: fn}
}

// Resolve returns the concrete function, or ErrUnknown for a name
// outside the catalog. Resolution happens once, at transition creation.
func (e Easing) Resolve() (Func, error) {
	if e.fn != nil {
		return e.fn, nil
	}
	name := e.name
	if name == "" {
		name = DefaultEasing
	}
	fn, ok := catalog[normalize(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, e.name)
	}
	return fn, nil
}

// Names returns the catalog names in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Underscored spellings are accepted for CLI convenience.
func normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}
