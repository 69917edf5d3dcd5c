package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PlatformData is the identity and motion state of a platform collider.
// Static platforms keep a zero Delta; moving platforms update Origin-relative
// positions each step and record the step's displacement for apply-sticky.
// A Sticky platform carries every grounded rider, not just Sticky actors.
type PlatformData struct {
	Name   string
	Origin Vector
	Dir    Vector
	Delta  Vector
	Sticky bool
}

var Platform = donburi.NewComponentType[PlatformData]()

// Tween drives a moving platform's travel along PlatformData.Dir.
var Tween = donburi.NewComponentType[gween.Sequence]()
