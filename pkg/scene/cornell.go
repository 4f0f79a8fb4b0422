package scene

import (
	"github.com/kesseloak/lumenforge/pkg/camera"
	"github.com/kesseloak/lumenforge/pkg/core"
	"github.com/kesseloak/lumenforge/pkg/geometry"
	"github.com/kesseloak/lumenforge/pkg/material"
)

// NewCornellScene builds the classic Cornell box (white walls, red left,
// green right, a quad light set into the ceiling) with a metal sphere and
// a glass sphere inside.
func NewCornellScene(imageWidth int) (*core.Scene, *camera.Camera) {
	b := NewBuilder(core.SamplingConfig{
		SamplesPerPixel: 1024,
		MaxDepth:        40,
	})

	white := material.NewLambertianColor(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertianColor(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertianColor(core.NewVec3(0.12, 0.45, 0.15))

	const boxSize = 555.0

	floor := geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white)
	ceiling := geometry.NewQuad(core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white)
	backWall := geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white)
	leftWall := geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), red)
	rightWall := geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green)

	b.Add(floor, ceiling, backWall, leftWall, rightWall)

	const lightSize = 130.0
	lightOffset := (boxSize - lightSize) / 2.0
	b.AddQuadLight(
		core.NewVec3(lightOffset, boxSize-1, lightOffset),
		core.NewVec3(lightSize, 0, 0),
		core.NewVec3(0, 0, lightSize),
		core.NewVec3(1, 1, 1),
		15.0,
	)

	leftSphere := geometry.NewSphere(core.NewVec3(185, 82.5, 169), 82.5, material.NewMetalColor(core.NewVec3(0.8, 0.8, 0.9), 0.0))
	rightSphere := geometry.NewSphere(core.NewVec3(370, 90, 351), 90, material.NewDielectric(1.5))
	b.Add(leftSphere, rightSphere)

	cam := camera.New(
		core.NewVec3(278, 278, -800), core.NewVec3(278, 278, 0), core.NewVec3(0, 1, 0),
		40, 1.0, imageWidth,
		0, 800,
		1024, 40,
	)

	return b.Build(), cam
}
