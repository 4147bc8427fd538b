// Package asset holds the game's sprite and sound catalog.
//
// Sprites are small bitmaps drawn at a fixed logical size; sounds are cues
// that an audio backend synthesizes. Both are looked up by their classic
// file paths so entities can name them the way the arcade assets are named.
package asset

import (
	"fmt"

	"github.com/tomz197/invaders/internal/draw"
)

// Image paths.
const (
	ImagePlayer       = "images/player1a.png"
	ImageBonus        = "images/mystery1a.png"
	ImageExplosion    = "images/explode1.png"
	ImagePlayerBullet = "images/bullet1a.png"
	ImageEnemyBullet  = "images/bullet2a.png"
)

// Sound paths.
const (
	SoundShoot         = "sounds/shoot.wav"
	SoundInvaderKilled = "sounds/invaderkilled.wav"
	SoundExplosion     = "sounds/explosion.wav"
)

// InvaderImage returns the path of animation frame (0 or 1) for an enemy tier (1..3).
func InvaderImage(tier, frame int) string {
	return fmt.Sprintf("images/invader%d%c.png", tier, 'a'+rune(frame))
}

// ShieldCellImage returns the path of a shield cell sprite.
// stage is the damage stage 0..3, col 0..3 and row 0..1 locate the cell.
func ShieldCellImage(stage, col, row int) string {
	return fmt.Sprintf("images/base1%c_%d_%d.png", 'a'+rune(stage), col+1, row+1)
}

// Image is a sprite: a bitmap stretched over W x H logical units.
// In Rows any character other than ' ' or '.' is a set pixel.
type Image struct {
	Path  string
	W, H  float64
	Rows  []string
	Color draw.Color
}

// Cue identifies a synthesized sound effect.
type Cue int

const (
	CueNone Cue = iota
	CueShoot
	CueInvaderKilled
	CueExplosion
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CueInvaderKilled:
		return "invaderkilled"
	case CueExplosion:
		return "explosion"
	default:
		return "none"
	}
}

// Sound is a playable sound handle.
type Sound struct {
	Path string
	Cue  Cue
}

// Loader resolves asset paths to handles. Entities call it once per
// distinct asset while they are constructed.
type Loader interface {
	LoadImage(path string) *Image
	LoadSound(path string) *Sound
}
