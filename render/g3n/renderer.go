// Package g3n fornisce un'implementazione dell'interfaccia Renderer utilizzando G3N
package g3n

import (
	"math"
	"time"

	"github.com/alexanderi96/go-nbody/physics/body"
	"github.com/alexanderi96/go-nbody/render/adapter"
	"github.com/google/uuid"

	"github.com/g3n/engine/app"
	"github.com/g3n/engine/camera"
	"github.com/g3n/engine/core"
	"github.com/g3n/engine/geometry"
	"github.com/g3n/engine/gls"
	"github.com/g3n/engine/graphic"
	"github.com/g3n/engine/light"
	"github.com/g3n/engine/material"
	"github.com/g3n/engine/math32"
	"github.com/g3n/engine/renderer"
	"github.com/g3n/engine/util/helper"
)

// G3NRenderer implementa l'interfaccia Renderer utilizzando G3N
type G3NRenderer struct {
	app    *app.Application
	scene  *core.Node
	camera *camera.Camera

	// Mappa per tenere traccia dei mesh associati ai corpi fisici
	bodyMeshes map[uuid.UUID]*graphic.Mesh

	bgColor adapter.Color
}

// NewG3NRenderer crea un nuovo renderer G3N
func NewG3NRenderer() *G3NRenderer {
	return &G3NRenderer{
		bodyMeshes: make(map[uuid.UUID]*graphic.Mesh),
		bgColor:    adapter.NewColor(0.0, 0.0, 0.05, 1.0),
	}
}

// Initialize inizializza il renderer
func (r *G3NRenderer) Initialize() error {
	// Crea l'applicazione G3N
	r.app = app.App()

	// Imposta il colore di sfondo
	r.app.Gls().ClearColor(
		float32(r.bgColor.R),
		float32(r.bgColor.G),
		float32(r.bgColor.B),
		float32(r.bgColor.A),
	)

	// Crea la scena
	r.scene = core.NewNode()

	// Crea la camera
	r.camera = camera.New(1)
	r.camera.SetPosition(0, 25, 120)
	r.camera.LookAt(&math32.Vector3{X: 0, Y: 0, Z: 0}, &math32.Vector3{X: 0, Y: 1, Z: 0})
	r.scene.Add(r.camera)

	// Crea il controllo orbitale della camera
	camera.NewOrbitControl(r.camera)

	// Aggiungi luci
	ambLight := light.NewAmbient(&math32.Color{R: 0.8, G: 0.8, B: 0.8}, 1.0)
	r.scene.Add(ambLight)

	pointLight := light.NewPoint(&math32.Color{R: 1, G: 1, B: 1}, 2.0)
	pointLight.SetPosition(50, 50, 50)
	r.scene.Add(pointLight)

	// Aggiungi assi e griglia di riferimento
	axes := helper.NewAxes(2)
	r.scene.Add(axes)

	grid := helper.NewGrid(100, 5, &math32.Color{R: 0.4, G: 0.4, B: 0.4})
	r.scene.Add(grid)

	return nil
}

// SetBackgroundColor imposta il colore di sfondo
func (r *G3NRenderer) SetBackgroundColor(color adapter.Color) {
	r.bgColor = color
	if r.app != nil {
		r.app.Gls().ClearColor(
			float32(color.R),
			float32(color.G),
			float32(color.B),
			float32(color.A),
		)
	}
}

// RenderBodies sincronizza la scena con la sequenza di corpi: crea un mesh
// per i corpi nuovi, aggiorna la posizione di quelli esistenti e rimuove i
// mesh dei corpi scomparsi
func (r *G3NRenderer) RenderBodies(bodies []body.Body) {
	currentIDs := make(map[uuid.UUID]bool, len(bodies))

	for _, b := range bodies {
		currentIDs[b.ID()] = true

		mesh, exists := r.bodyMeshes[b.ID()]
		if !exists {
			mesh = r.createBodyMesh(b)
			r.bodyMeshes[b.ID()] = mesh
			r.scene.Add(mesh)
		}

		pos := b.Position()
		mesh.SetPosition(float32(pos.X()), float32(pos.Y()), float32(pos.Z()))
	}

	for id, mesh := range r.bodyMeshes {
		if !currentIDs[id] {
			r.scene.Remove(mesh)
			delete(r.bodyMeshes, id)
		}
	}
}

// createBodyMesh crea una sfera per rappresentare un corpo, con raggio
// proporzionale alla radice cubica della massa
func (r *G3NRenderer) createBodyMesh(b body.Body) *graphic.Mesh {
	radius := 0.2 * math.Cbrt(b.Mass())

	geom := geometry.NewSphere(radius, 16, 8)
	mat := material.NewStandard(&math32.Color{R: 0.9, G: 0.85, B: 0.7})

	return graphic.NewMesh(geom, mat)
}

// Run avvia il loop di rendering e invoca update ad ogni frame
func (r *G3NRenderer) Run(update func(deltaTime time.Duration)) {
	r.app.Run(func(rend *renderer.Renderer, deltaTime time.Duration) {
		gl := r.app.Gls()
		gl.Clear(gls.DEPTH_BUFFER_BIT | gls.STENCIL_BUFFER_BIT | gls.COLOR_BUFFER_BIT)
		gl.Enable(gls.DEPTH_TEST)

		if update != nil {
			update(deltaTime)
		}

		rend.Render(r.scene, r.camera)
	})
}
