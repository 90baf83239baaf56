package vaporgrid

import (
	_ "embed"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/rgbshift.kage
var rgbShiftShaderText []byte

//go:embed shaders/gamma.kage
var gammaShaderText []byte

// Pass is a single step of a Composer's post-processing chain.
type Pass interface {
	// Name identifies the pass in logs and debug output.
	Name() string
	// Render draws the pass into dst. src holds the previous pass's output, and is nil for the first pass.
	Render(dst, src *ebiten.Image)
}

// RenderPass renders a Scene through a Camera; it is usually the first pass of a Composer.
type RenderPass struct {
	Scene  *Scene
	Camera *Camera
}

// NewRenderPass returns a new RenderPass.
func NewRenderPass(scene *Scene, camera *Camera) *RenderPass {
	return &RenderPass{Scene: scene, Camera: camera}
}

func (pass *RenderPass) Name() string { return "render" }

func (pass *RenderPass) Render(dst, src *ebiten.Image) {
	pass.Camera.RenderScene(pass.Scene)
	drawScaled(dst, pass.Camera.ColorTexture())
}

// ShaderPass runs a full-screen Kage shader over the previous pass's output.
type ShaderPass struct {
	name     string
	source   []byte
	shader   *ebiten.Shader
	Uniforms map[string]any
}

// NewShaderPass creates a ShaderPass from Kage source. The shader is compiled the first time the pass renders.
func NewShaderPass(name string, source []byte, uniforms map[string]any) *ShaderPass {
	if uniforms == nil {
		uniforms = map[string]any{}
	}
	return &ShaderPass{name: name, source: source, Uniforms: uniforms}
}

// NewRGBShiftPass returns a ShaderPass that offsets the red and blue channels in opposite directions along the horizontal axis.
// amount is a fraction of the image width (0.0015 is a subtle chromatic fringe).
func NewRGBShiftPass(amount float64) *ShaderPass {
	return NewShaderPass("rgbshift", rgbShiftShaderText, map[string]any{
		"Amount": float32(amount),
		"Angle":  float32(0),
	})
}

// NewGammaCorrectionPass returns a ShaderPass that converts linear color to sRGB.
func NewGammaCorrectionPass() *ShaderPass {
	return NewShaderPass("gamma", gammaShaderText, nil)
}

func (pass *ShaderPass) Name() string { return pass.name }

func (pass *ShaderPass) Render(dst, src *ebiten.Image) {

	if pass.shader == nil {
		shader, err := ebiten.NewShader(pass.source)
		if err != nil {
			panic(err)
		}
		pass.shader = shader
	}

	size := dst.Bounds().Size()
	opt := &ebiten.DrawRectShaderOptions{Uniforms: pass.Uniforms}
	opt.Images[0] = src
	dst.DrawRectShader(size.X, size.Y, pass.shader, opt)

}

// Composer runs a chain of Passes, ping-ponging between two offscreen buffers, and draws the result to the screen.
// Its buffers are sized to the Composer's logical size multiplied by its pixel ratio.
type Composer struct {
	passes        []Pass
	width, height int
	pixelRatio    float64

	readBuffer  *ebiten.Image
	writeBuffer *ebiten.Image
}

// NewComposer creates a new Composer with the given logical size.
func NewComposer(width, height int) *Composer {
	composer := &Composer{pixelRatio: 1}
	composer.SetSize(width, height)
	return composer
}

// AddPass appends passes to the end of the chain.
func (composer *Composer) AddPass(passes ...Pass) {
	composer.passes = append(composer.passes, passes...)
}

// Passes returns the chain of passes, in order.
func (composer *Composer) Passes() []Pass {
	return composer.passes
}

// SetSize sets the logical size of the Composer. Buffers are re-created at the next render.
func (composer *Composer) SetSize(width, height int) {
	composer.width = max(width, 1)
	composer.height = max(height, 1)
}

// Size returns the logical size of the Composer.
func (composer *Composer) Size() (w, h int) {
	return composer.width, composer.height
}

// SetPixelRatio sets how many buffer pixels the Composer uses per logical pixel. Values <= 0 are treated as 1.
func (composer *Composer) SetPixelRatio(ratio float64) {
	if ratio <= 0 {
		ratio = 1
	}
	composer.pixelRatio = ratio
}

// PixelRatio returns the Composer's pixel ratio.
func (composer *Composer) PixelRatio() float64 {
	return composer.pixelRatio
}

// TextureSize returns the size of the Composer's buffers in pixels.
func (composer *Composer) TextureSize() (w, h int) {
	return scaledSize(composer.width, composer.height, composer.pixelRatio)
}

func (composer *Composer) ensureBuffers() {
	w, h := composer.TextureSize()
	composer.readBuffer = resizeBuffer(composer.readBuffer, w, h)
	composer.writeBuffer = resizeBuffer(composer.writeBuffer, w, h)
}

// Render runs every pass in order and draws the final result onto the screen, scaled to fit it.
func (composer *Composer) Render(screen *ebiten.Image) {

	if len(composer.passes) == 0 {
		return
	}

	composer.ensureBuffers()

	var src *ebiten.Image

	for _, pass := range composer.passes {
		composer.writeBuffer.Clear()
		pass.Render(composer.writeBuffer, src)
		composer.readBuffer, composer.writeBuffer = composer.writeBuffer, composer.readBuffer
		src = composer.readBuffer
	}

	drawScaled(screen, src)

}

func resizeBuffer(buffer *ebiten.Image, w, h int) *ebiten.Image {
	if buffer != nil {
		size := buffer.Bounds().Size()
		if size.X == w && size.Y == h {
			return buffer
		}
		buffer.Deallocate()
	}
	return ebiten.NewImageWithOptions(image.Rect(0, 0, w, h), &ebiten.NewImageOptions{Unmanaged: true})
}

// drawScaled draws src over the whole of dst, stretching it if their sizes differ.
func drawScaled(dst, src *ebiten.Image) {
	dstSize := dst.Bounds().Size()
	srcSize := src.Bounds().Size()
	opt := &ebiten.DrawImageOptions{}
	opt.GeoM.Scale(float64(dstSize.X)/float64(srcSize.X), float64(dstSize.Y)/float64(srcSize.Y))
	opt.Filter = ebiten.FilterLinear
	dst.DrawImage(src, opt)
}
