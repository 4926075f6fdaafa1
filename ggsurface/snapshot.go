package ggsurface

import "github.com/phanxgames/shapegrid"

// Snapshot resizes scene to width×height, redraws it once onto a fresh
// raster and writes the result to path.
func Snapshot(scene shapegrid.Scene, width, height int, path string) error {
	s, err := New(width, height)
	if err != nil {
		return err
	}
	defer s.Close()

	scene.Resize(width, height)
	scene.Redraw(s)
	return s.SavePNG(path)
}
