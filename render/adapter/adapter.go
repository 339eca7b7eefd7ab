// Package adapter fornisce interfacce per il rendering
package adapter

import (
	"time"

	"github.com/alexanderi96/go-nbody/physics/body"
)

// Color rappresenta un colore RGBA
type Color struct {
	R, G, B, A float64 // Componenti del colore (0-1)
}

// NewColor crea un nuovo colore
func NewColor(r, g, b, a float64) Color {
	return Color{
		R: r,
		G: g,
		B: b,
		A: a,
	}
}

// Renderer rappresenta un'interfaccia per il rendering della simulazione
type Renderer interface {
	// Initialize inizializza il renderer
	Initialize() error

	// SetBackgroundColor imposta il colore di sfondo
	SetBackgroundColor(color Color)

	// RenderBodies sincronizza la scena con la sequenza di corpi
	RenderBodies(bodies []body.Body)

	// Run avvia il loop di rendering e invoca update ad ogni frame
	Run(update func(deltaTime time.Duration))
}
