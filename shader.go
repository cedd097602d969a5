package tileshade

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

// ShaderSunShadow is the name of the directional tile shadow shader.
const ShaderSunShadow = "sunshadow"

// ShaderLibrary loads and compiles named Kage shaders. Sources are embedded
// in the package; compiled shaders are cached so repeated loads are cheap.
// The zero value is ready to use.
type ShaderLibrary struct {
	compiled map[string]*ebiten.Shader
}

// NewShaderLibrary returns an empty shader library.
func NewShaderLibrary() *ShaderLibrary {
	return &ShaderLibrary{}
}

// Source returns the Kage source for the named shader, or an error if no
// such shader is embedded.
func (lib *ShaderLibrary) Source(name string) ([]byte, error) {
	src, err := shaderFS.ReadFile("shaders/" + name + ".kage")
	if err != nil {
		return nil, fmt.Errorf("shader %q not found", name)
	}
	return src, nil
}

// Load returns the compiled shader for the given name, compiling it on first
// use. Missing sources and compile failures are returned as errors; callers
// constructing filters treat these as fatal.
func (lib *ShaderLibrary) Load(name string) (*ebiten.Shader, error) {
	if s, ok := lib.compiled[name]; ok {
		return s, nil
	}
	src, err := lib.Source(name)
	if err != nil {
		return nil, err
	}
	s, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("compile shader %q: %w", name, err)
	}
	if lib.compiled == nil {
		lib.compiled = make(map[string]*ebiten.Shader)
	}
	lib.compiled[name] = s
	logf("shader %q compiled", name)
	return s, nil
}
