package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CueData holds the presentation tweens that stand in for the attack and
// transformation animations. Their completion produces the acknowledgments.
type CueData struct {
	Attack      *gween.Tween
	AttackValue float32
	Morph       *gween.Tween
	MorphValue  float32
}

var Cue = donburi.NewComponentType[CueData]()
