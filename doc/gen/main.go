// Command gen renders the grid in a few interaction states, captures
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/datagrid"
	"github.com/go-theft-auto/datagrid/backend/opengl"
	"github.com/go-theft-auto/datagrid/internal/demo"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single grid screenshot to capture.
type screenshot struct {
	name   string                       // filename without extension
	width  int                          // viewport width
	height int                          // viewport height
	rows   [][]any                      // nil renders the empty state
	opts   []datagrid.Option            // extra grid options
	frames []func(*datagrid.InputState) // input fed one frame each before capture
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(1000, 700, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(1000, 700)
	if err != nil {
		return fmt.Errorf("grid renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Only update the renderer projection; the hidden window stays larger
	// than every screenshot.
	renderer.Resize(s.width, s.height)

	opts := append([]datagrid.Option{
		datagrid.WithPageOptions(datagrid.PageOptions{Total: demo.TotalRecords}),
		datagrid.WithEmptyRender(func(c datagrid.Canvas, r datagrid.Rect) {
			c.AddText(r.X+12, r.Y+12, "No records", datagrid.ColorGray)
		}),
	}, s.opts...)

	// Fresh grid per screenshot to avoid state leaking between captures.
	grid := datagrid.New(demo.Headers(), s.rows, opts...)
	grid.Resize(datagrid.Rect{W: float32(s.width), H: float32(s.height)})

	in := datagrid.NewInputState()
	for _, f := range s.frames {
		in.Reset()
		f(in)
		grid.HandleInput(in)
	}

	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if err := grid.Render(renderer); err != nil {
		return err
	}

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// pointer returns a frame that moves the pointer to (x, y) with the primary
// button held or released.
func pointer(x, y float32, down bool) func(*datagrid.InputState) {
	return func(in *datagrid.InputState) {
		in.SetMousePos(x, y)
		in.SetMouseButton(datagrid.MouseButtonLeft, down)
	}
}

func wheel(x, y, notches float32) func(*datagrid.InputState) {
	return func(in *datagrid.InputState) {
		in.SetMousePos(x, y)
		in.SetMouseWheel(0, -notches)
	}
}

// buildScreenshots returns the list of all grid screenshots to generate.
// Coordinates assume the default 40 pixel gutter and header, with seven
// columns laid out over 760 pixels of body.
func buildScreenshots() []screenshot {
	page := demo.Page(1, datagrid.DefaultPageSize)
	const w, h = 800, 500

	return []screenshot{
		{name: "grid", width: w, height: h, rows: page},
		{
			name: "grid_scrolled", width: w, height: h, rows: page,
			frames: []func(*datagrid.InputState){wheel(400, 300, 3)},
		},
		{
			name: "grid_highlight", width: w, height: h, rows: page,
			frames: []func(*datagrid.InputState){
				pointer(200, 20, true),
				pointer(200, 20, false),
				pointer(20, 145, true),
				pointer(20, 145, false),
			},
		},
		{
			name: "grid_column_resize", width: w, height: h, rows: page,
			// Right edge of column 1 sits at 40 + 2*108.
			frames: []func(*datagrid.InputState){
				pointer(256, 20, true),
				pointer(316, 20, true),
			},
		},
		{
			name: "grid_row_resize", width: w, height: h, rows: page,
			frames: []func(*datagrid.InputState){
				pointer(20, 100, true),
				pointer(20, 140, true),
			},
		},
		{
			name: "grid_reorder", width: w, height: h, rows: page,
			frames: []func(*datagrid.InputState){
				pointer(90, 20, true),
				pointer(420, 20, true),
			},
		},
		{
			name: "grid_no_gutter", width: w, height: h, rows: page,
			opts: []datagrid.Option{datagrid.WithRowNumbers(false), datagrid.WithPagination(false)},
		},
		{name: "grid_empty", width: w, height: 240},
	}
}
