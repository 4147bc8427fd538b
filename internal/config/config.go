package config

import "time"

// Game configuration constants.
// All tunable game parameters are centralized here for easy adjustment.
// Positions and sizes are in logical playfield units; rates are per tick.

// Playfield
const (
	ScreenWidth  = 850
	ScreenHeight = 1000
)

// Formation
const (
	FormationCols     = 11
	FormationRows     = 5
	RowSpacing        = 60
	RowTop            = 110
	ColumnSpacing     = 34   // enemy x = ColumnSpacing * (2*col + 1)
	CellWidth         = 48   // shared enemy cell width used for edge checks and descend step
	InitialSpeed      = 0.5  // horizontal units per tick
	SpeedRamp         = 1.1  // speed multiplier applied on every descend
	BreachY           = 900  // a row below this line ends the game
	EnemyFireChance   = 0.01 // per enemy, per tick
	EnemyAnimTicks    = 12   // ticks between animation frames
	ExplodeTicks      = 4    // ticks an explosion lasts before the entity is dead
	ExplosionSize     = 48   // explosion sprite is centered on the entity
	EnemyBulletOffset = 24.0 // enemy shots spawn this far below the enemy center
)

// Projectiles
const (
	PoolSize           = 5
	EnemyBulletWidth   = 9
	EnemyBulletHeight  = 26
	EnemyBulletSpeed   = 6
	PlayerBulletWidth  = 4
	PlayerBulletHeight = 26
	PlayerBulletSpeed  = 16
	PlayerBulletTopY   = 10 // player shots above this line expire
)

// Player
const (
	PlayerWidth        = 57
	PlayerHeight       = 35
	PlayerBottomOffset = 50 // player y = ScreenHeight - PlayerBottomOffset
	PlayerSpeed        = 3
	InitialLives       = 4
	FireCooldownTicks  = 8
)

// Bonus target
const (
	BonusWidth       = 71
	BonusHeight      = 31
	BonusY           = 60
	BonusSpeed       = -3
	BonusSpawnChance = 0.01
)

// Shields
const (
	ShieldCount   = 4
	ShieldSpacing = 98 // shield x = ShieldSpacing * (2*i + 1)
	ShieldY       = 840
	ShieldWidth   = 87
	ShieldHeight  = 57
	ShieldRows    = 2
	ShieldCols    = 4
	ShieldCellW   = 22
	ShieldCellH   = 29
	CellMaxHits   = 4
)

// HUD
const (
	HUDMargin = 10
)

// Frame timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Terminal rendering limits (columns/rows).
const (
	MaxTermWidth  = 170
	MaxTermHeight = 100
)

// SSH hosting
const (
	DefaultSSHHost     = "::"
	DefaultSSHPort     = "2222"
	DefaultHostKeyPath = ".ssh/invaders_host_key"
	DefaultIdleSeconds = 120
	ShutdownGrace      = 5 * time.Second
)
