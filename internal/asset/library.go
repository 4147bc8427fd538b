package asset

import (
	"slices"
	"sync"

	"github.com/charmbracelet/log"
)

// Library is the builtin Loader. Unknown paths resolve to a visible
// placeholder sprite or a silent sound and are recorded as missing.
// It is safe for concurrent use, so one Library can serve many sessions.
type Library struct {
	mu      sync.Mutex
	images  map[string]*Image
	sounds  map[string]*Sound
	missing []string
	logger  *log.Logger
}

var _ Loader = (*Library)(nil)

// NewLibrary creates a Library that reports missing assets to logger.
// A nil logger uses the default charmbracelet logger.
func NewLibrary(logger *log.Logger) *Library {
	if logger == nil {
		logger = log.Default()
	}
	return &Library{
		images: make(map[string]*Image),
		sounds: make(map[string]*Sound),
		logger: logger,
	}
}

// LoadImage returns the sprite for path.
func (l *Library) LoadImage(path string) *Image {
	l.mu.Lock()
	defer l.mu.Unlock()

	if img, ok := l.images[path]; ok {
		return img
	}
	img, ok := builtinImages[path]
	if !ok {
		l.logger.Warn("missing image, using placeholder", "path", path)
		l.missing = append(l.missing, path)
		img = placeholder(path)
	}
	l.images[path] = img
	return img
}

// LoadSound returns the sound for path.
func (l *Library) LoadSound(path string) *Sound {
	l.mu.Lock()
	defer l.mu.Unlock()

	if snd, ok := l.sounds[path]; ok {
		return snd
	}
	cue, ok := builtinSounds[path]
	if !ok {
		l.logger.Warn("missing sound, playing nothing", "path", path)
		l.missing = append(l.missing, path)
	}
	snd := &Sound{Path: path, Cue: cue}
	l.sounds[path] = snd
	return snd
}

// Missing returns the paths that could not be resolved, in request order.
func (l *Library) Missing() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.missing)
}
