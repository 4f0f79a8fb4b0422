package scene

import (
	"github.com/kesseloak/lumenforge/pkg/camera"
	"github.com/kesseloak/lumenforge/pkg/core"
	"github.com/kesseloak/lumenforge/pkg/geometry"
	"github.com/kesseloak/lumenforge/pkg/material"
	"github.com/kesseloak/lumenforge/pkg/texture"
)

// NewDefaultScene builds a small showcase scene (four spheres: blue
// Lambertian, silver metal, fuzzy gold metal and a small glass ball, over a
// checkered ground quad, lit by a bright sphere light under a solid sky-blue
// background) exercising most of the material/texture catalog at once.
func NewDefaultScene(imageWidth int, aspectRatio float64) (*core.Scene, *camera.Camera) {
	b := NewBuilder(core.SamplingConfig{
		SamplesPerPixel: 256,
		MaxDepth:        50,
	})

	ground := texture.NewChecker(0.32,
		texture.NewSolid(core.NewVec3(0.2, 0.3, 0.1)),
		texture.NewSolid(core.NewVec3(0.9, 0.9, 0.9)),
	)
	lambertianGreen := material.NewLambertian(ground)
	lambertianBlue := material.NewLambertianColor(core.NewVec3(0.1, 0.2, 0.5))
	metalSilver := material.NewMetalColor(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	metalGold := material.NewMetalColor(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	glass := material.NewDielectric(1.5)

	b.Add(
		geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, lambertianBlue),
		geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5, metalSilver),
		geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, metalGold),
		geometry.NewSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, glass),
		GroundQuad(core.NewVec3(0, 0, 0), 10000.0, lambertianGreen),
	)

	b.AddSphereLight(core.NewVec3(30, 30.5, 15), 10, core.NewVec3(1, 1, 1), 15)

	b.Background = core.SolidBackground{Color: core.NewVec3(0.5, 0.7, 1.0)}

	return b.Build(), DefaultCamera(imageWidth, aspectRatio)
}
