package runner

import "github.com/vovakirdan/golden-fly/internal/core"

// Player is the golden fly. X never changes; Y is the top edge.
type Player struct {
	X, Y     float64
	VY       float64 // Vertical velocity, negative = up
	W, H     float64
	Grounded bool
}

// Box returns the player's collision box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Land places the player at rest on the ground line.
func (p *Player) Land(groundY float64) {
	p.Y = groundY - p.H
	p.VY = 0
	p.Grounded = true
}

// Fall applies one tick of gravity: velocity first, then position,
// then clamps to the ground.
func (p *Player) Fall(gravity, groundY float64) {
	p.VY += gravity
	p.Y += p.VY

	if p.Y+p.H >= groundY {
		p.Land(groundY)
	} else {
		p.Grounded = false
	}
}
