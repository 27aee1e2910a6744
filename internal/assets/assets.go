package assets

import (
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Manager owns GPU textures uploaded from decoded images. Uploads must happen
// on the thread that owns the window.
type Manager struct {
	textures map[string]rl.Texture2D
}

func NewManager() *Manager {
	return &Manager{
		textures: make(map[string]rl.Texture2D),
	}
}

// Upload turns every image into a texture, skipping paths already uploaded.
func (m *Manager) Upload(images map[string]image.Image) {
	for path, img := range images {
		if _, exists := m.textures[path]; exists {
			continue
		}
		cpu := rl.NewImageFromImage(img)
		texture := rl.LoadTextureFromImage(cpu)
		rl.UnloadImage(cpu)
		rl.GenTextureMipmaps(&texture)
		rl.SetTextureFilter(texture, rl.FilterTrilinear)
		m.textures[path] = texture
	}
}

// Texture returns the uploaded texture for path. An empty path or a path
// that was never uploaded reports false.
func (m *Manager) Texture(path string) (rl.Texture2D, bool) {
	if path == "" {
		return rl.Texture2D{}, false
	}
	t, ok := m.textures[path]
	return t, ok
}

func (m *Manager) Unload() {
	for _, texture := range m.textures {
		rl.UnloadTexture(texture)
	}
	m.textures = make(map[string]rl.Texture2D)
}
