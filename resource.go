package rowan

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"
)

// audioSampleRate is the shared playback rate for all loaded sounds.
const audioSampleRate = 48000

// defaultFontSize is used for widget text when no explicit font is set.
const defaultFontSize = 24

// Sound is a fully decoded sound effect bound to the engine's audio context.
type Sound struct {
	ctx  *audio.Context
	data []byte
}

// Play starts playback from the beginning on a fresh player and returns it.
// Multiple calls overlap.
func (s *Sound) Play() *audio.Player {
	p := audio.NewPlayerFromBytes(s.ctx, s.data)
	p.Play()
	return p
}

// Font pairs a loaded font source with a point size.
type Font struct {
	Source *text.GoTextFaceSource
	Size   float64
}

// Face returns a text face for drawing and measuring at the font's size.
func (f *Font) Face() text.Face {
	return &text.GoTextFace{Source: f.Source, Size: f.Size}
}

// Resources is the name→handle table for textures, sounds, and fonts.
// Loading is synchronous and blocking; re-loading an already known name
// returns the cached handle without touching the backing store. Looking up an
// unknown name returns nil, never an error.
type Resources struct {
	textures map[string]*ebiten.Image
	sounds   map[string]*Sound
	fonts    map[string]*Font

	audioCtx    *audio.Context
	defaultFont *Font
}

// NewResources creates an empty resource table.
func NewResources() *Resources {
	return &Resources{
		textures: make(map[string]*ebiten.Image),
		sounds:   make(map[string]*Sound),
		fonts:    make(map[string]*Font),
	}
}

// LoadTexture decodes the image at path and caches it under name.
func (r *Resources) LoadTexture(name, path string) (*ebiten.Image, error) {
	if img, ok := r.textures[name]; ok {
		return img, nil
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load texture %q: %w", name, err)
	}
	r.textures[name] = img
	logger.Debug("texture loaded", zap.String("name", name), zap.String("path", path))
	return img, nil
}

// LoadSound decodes the sound file at path (wav or ogg, by extension) and
// caches it under name. The first sound load creates the audio context.
func (r *Resources) LoadSound(name, path string) (*Sound, error) {
	if snd, ok := r.sounds[name]; ok {
		return snd, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load sound %q: %w", name, err)
	}
	defer f.Close()

	var stream io.Reader
	switch ext := filepath.Ext(path); ext {
	case ".wav":
		stream, err = wav.DecodeWithoutResampling(f)
	case ".ogg":
		stream, err = vorbis.DecodeWithoutResampling(f)
	default:
		return nil, fmt.Errorf("load sound %q: unsupported format %q", name, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("load sound %q: %w", name, err)
	}

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("load sound %q: %w", name, err)
	}

	snd := &Sound{ctx: r.audioContext(), data: data}
	r.sounds[name] = snd
	logger.Debug("sound loaded", zap.String("name", name), zap.String("path", path))
	return snd, nil
}

// LoadFont reads the TrueType/OpenType file at path and caches it under name
// at the given point size.
func (r *Resources) LoadFont(name, path string, size float64) (*Font, error) {
	if fnt, ok := r.fonts[name]; ok {
		return fnt, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", name, err)
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", name, err)
	}
	fnt := &Font{Source: src, Size: size}
	r.fonts[name] = fnt
	logger.Debug("font loaded", zap.String("name", name), zap.String("path", path))
	return fnt, nil
}

// Texture returns the texture cached under name, or nil if none is loaded.
func (r *Resources) Texture(name string) *ebiten.Image {
	return r.textures[name]
}

// Sound returns the sound cached under name, or nil if none is loaded.
func (r *Resources) Sound(name string) *Sound {
	return r.sounds[name]
}

// Font returns the font cached under name, or nil if none is loaded.
func (r *Resources) Font(name string) *Font {
	return r.fonts[name]
}

// DefaultFont returns the built-in Go Regular font, so text widgets work
// before any font file has been loaded. Built on first use.
func (r *Resources) DefaultFont() *Font {
	if r.defaultFont == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			// The embedded font bytes are known good; failing to parse them
			// is a build problem, not a runtime condition.
			panic("rowan: parse built-in font: " + err.Error())
		}
		r.defaultFont = &Font{Source: src, Size: defaultFontSize}
	}
	return r.defaultFont
}

// audioContext returns the process-wide audio context, creating it on first
// use. Ebiten allows only one context per process.
func (r *Resources) audioContext() *audio.Context {
	if r.audioCtx == nil {
		if ctx := audio.CurrentContext(); ctx != nil {
			r.audioCtx = ctx
		} else {
			r.audioCtx = audio.NewContext(audioSampleRate)
		}
	}
	return r.audioCtx
}
