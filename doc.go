// Package cg provides the small math and pixel-buffer core of a toolkit
// for introductory computer graphics.
//
// # Overview
//
// cg is the shared foundation of a set of independent teaching scenes:
// Bresenham line rasterization, circle antialiasing, 2D affine transforms,
// a 2D-to-1D pinhole camera, alpha compositing, Phong lighting on 2D
// surfaces and homogeneous triangle projection. Every scene renders into
// an Image and nothing else is shared between them.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/cg"
//		"github.com/gogpu/cg/raster"
//	)
//
//	img := cg.NewImage(200, 200)
//	img.Clear(cg.White)
//	raster.DrawLine(img, raster.Pixel{X: 10, Y: 10}, raster.Pixel{X: 180, Y: 60}, cg.Black)
//	_ = img.SavePNG("line.png")
//
// # Architecture
//
// The library is organized into:
//   - Public API: Vec2, Vec3, Vec4, Mat3, Mat4, Affine, Color, Image
//   - raster: Bresenham lines and circles on an Image
//   - camera: the 2D-to-1D camera, simple projections, triangle projection
//   - shading: Phong lighting, flat and Gouraud shading of polylines
//   - compose: layered alpha compositing
//   - scene: explicit scene state, pure event handlers and render steps
//
// # Coordinate System
//
// Images use standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Matrices are column-major (OpenGL layout); see Mat3.
//
// # Errors
//
// Math on degenerate input reports ErrZeroVector, ErrSingularMatrix or
// ErrZeroW instead of producing NaN. Rasterization never fails: pixels
// outside an Image are clipped.
package cg
