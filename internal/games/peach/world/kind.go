package world

// Kind identifies what an entity is. The set is closed; every kind has a
// fixed trait row and a behavior constructor.
type Kind uint8

const (
	KindPeach Kind = iota
	KindGoomba
	KindKoopa
	KindPiranha
	KindBlock
	KindPipe
	KindStarBlock
	KindFlowerBlock
	KindMushroomBlock
	KindStar
	KindFlower
	KindMushroom
	KindShell
	KindPeachFireball
	KindPiranhaFireball
	KindFlag
	KindMario
	kindCount // Sentinel value for iteration
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPeach:
		return "peach"
	case KindGoomba:
		return "goomba"
	case KindKoopa:
		return "koopa"
	case KindPiranha:
		return "piranha"
	case KindBlock:
		return "block"
	case KindPipe:
		return "pipe"
	case KindStarBlock:
		return "star_block"
	case KindFlowerBlock:
		return "flower_block"
	case KindMushroomBlock:
		return "mushroom_block"
	case KindStar:
		return "star"
	case KindFlower:
		return "flower"
	case KindMushroom:
		return "mushroom"
	case KindShell:
		return "shell"
	case KindPeachFireball:
		return "peach_fireball"
	case KindPiranhaFireball:
		return "piranha_fireball"
	case KindFlag:
		return "flag"
	case KindMario:
		return "mario"
	default:
		return "unknown"
	}
}

// traits are the per-kind constants: solidity, damage eligibility and draw depth.
type traits struct {
	blocking  bool
	damagable bool
	player    bool
	depth     int
}

var kindTraits = [kindCount]traits{
	KindPeach:           {damagable: true, player: true, depth: 0},
	KindGoomba:          {damagable: true, depth: 0},
	KindKoopa:           {damagable: true, depth: 0},
	KindPiranha:         {damagable: true, depth: 0},
	KindBlock:           {blocking: true, depth: 2},
	KindPipe:            {blocking: true, depth: 2},
	KindStarBlock:       {blocking: true, depth: 2},
	KindFlowerBlock:     {blocking: true, depth: 2},
	KindMushroomBlock:   {blocking: true, depth: 2},
	KindStar:            {depth: 1},
	KindFlower:          {depth: 1},
	KindMushroom:        {depth: 1},
	KindShell:           {depth: 1},
	KindPeachFireball:   {depth: 1},
	KindPiranhaFireball: {depth: 1},
	KindFlag:            {depth: 1},
	KindMario:           {depth: 1},
}

// IsEnemy reports whether the kind is one of the hostile creatures.
func (k Kind) IsEnemy() bool {
	return k == KindGoomba || k == KindKoopa || k == KindPiranha
}

// IsGoodie reports whether the kind is a collectible power-up.
func (k Kind) IsGoodie() bool {
	return k == KindStar || k == KindFlower || k == KindMushroom
}

// Facing is the horizontal direction an entity looks toward.
type Facing int8

const (
	FacingRight Facing = 1
	FacingLeft  Facing = -1
)

// Reverse returns the opposite facing.
func (f Facing) Reverse() Facing {
	if f == FacingLeft {
		return FacingRight
	}
	return FacingLeft
}

// Sign returns -1 for left and +1 for right.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

// String returns "left" or "right".
func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}
