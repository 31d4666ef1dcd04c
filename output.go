package sawa

import (
	"deedles.dev/sawa/internal/util"
	"deedles.dev/ximage/geom"
)

// An Output is one display in the global layout. LayoutBox is its
// position and size in layout coordinates; UsableBox is the
// output-relative area left over for windows after exclusive surfaces
// take their share.
type Output struct {
	Server *Server
	Name   string
	Scale  float32

	LayoutBox geom.Rect[int]
	UsableBox geom.Rect[int]

	Damage Damage
}

// Damage tracks whether an output needs repainting. There is no
// incremental tracking at this layer; a damaged output is repainted
// whole.
type Damage struct {
	whole bool
}

// AddWhole marks the output as needing a full repaint.
func (d *Damage) AddWhole() {
	d.whole = true
}

// TakeWhole reports whether a full repaint is needed and resets the
// flag. The renderer calls this once per frame.
func (d *Damage) TakeWhole() bool {
	whole := d.whole
	d.whole = false
	return whole
}

// An OutputConfig overrides the placement of the output with the
// matching name. Zero width or height keeps the output's native size,
// and a zero scale keeps the default.
type OutputConfig struct {
	Name          string
	X, Y          int
	Width, Height int
	Scale         float32
}

// AddOutput registers an output with the given native size. If the
// server has a config entry for name it decides the output's layout
// position; otherwise the output goes to the right of the current
// layout.
func (server *Server) AddOutput(name string, width, height int) *Output {
	out := Output{
		Server:    server,
		Name:      name,
		Scale:     1,
		UsableBox: geom.Rt(0, 0, width, height),
	}

	config, ok := util.FindFunc(server.OutputConfigs, func(c OutputConfig) bool {
		return c.Name == name
	})
	if ok {
		server.configureOutput(&out, config, width, height)
	} else {
		server.layoutOutputAuto(&out, width, height)
	}

	server.outputs = append(server.outputs, &out)
	return &out
}

func (server *Server) configureOutput(out *Output, config OutputConfig, width, height int) {
	if config.Width != 0 && config.Height != 0 {
		width, height = config.Width, config.Height
	}
	out.LayoutBox = geom.Rt(config.X, config.Y, config.X+width, config.Y+height)
	out.UsableBox = geom.Rt(0, 0, width, height)

	if config.Scale != 0 {
		out.Scale = config.Scale
	}
}

func (server *Server) layoutOutputAuto(out *Output, width, height int) {
	var x int
	for _, o := range server.outputs {
		if o.LayoutBox.Max.X > x {
			x = o.LayoutBox.Max.X
		}
	}
	out.LayoutBox = geom.Rt(x, 0, x+width, height)
}
