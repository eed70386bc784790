package shmup

import "github.com/vovakirdan/tui-shmup/internal/core"

// Role tags a combatant (and a projectile's target) as player or enemy side.
type Role int

const (
	RolePlayer Role = iota
	RoleEnemy
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Targeting is an enemy's fixed firing pattern.
type Targeting int

const (
	TargetRandom    Targeting = iota // One leftward shot with vertical jitter
	TargetRandomHit                  // As random, alternating muzzles, fires more when wounded
	TargetMirror                     // As random, echoes the player's own fire
	TargetRandomXY                   // Two shots in random directions, no probability gate
)

// String returns the config spelling of the style.
func (t Targeting) String() string {
	switch t {
	case TargetRandom:
		return "random"
	case TargetRandomHit:
		return "random_hit"
	case TargetMirror:
		return "mirror"
	case TargetRandomXY:
		return "random_xy"
	default:
		return "unknown"
	}
}

// ParseTargeting converts a config value into a Targeting style.
func ParseTargeting(field, s string) (Targeting, error) {
	switch s {
	case "random":
		return TargetRandom, nil
	case "random_hit":
		return TargetRandomHit, nil
	case "mirror":
		return TargetMirror, nil
	case "random_xy":
		return TargetRandomXY, nil
	default:
		return TargetRandom, core.ConfigErrorf(field, "unknown targeting style %q", s)
	}
}

// Movement is an enemy's fixed steering style.
type Movement int

const (
	MoveFollow Movement = iota // Drift plus pursuit of the player's Y
	MoveDrift                  // Drift only
)

// String returns the config spelling of the style.
func (m Movement) String() string {
	switch m {
	case MoveFollow:
		return "follow"
	case MoveDrift:
		return "drift"
	default:
		return "unknown"
	}
}

// ParseMovement converts a config value into a Movement style.
func ParseMovement(field, s string) (Movement, error) {
	switch s {
	case "follow":
		return MoveFollow, nil
	case "drift":
		return MoveDrift, nil
	default:
		return MoveFollow, core.ConfigErrorf(field, "unknown movement style %q", s)
	}
}
