// Package icgen provides seedable generators for initial body configurations
package icgen

import (
	"math"
	"math/rand/v2"

	"github.com/alexanderi96/go-nbody/core/vector"
	"github.com/alexanderi96/go-nbody/physics/body"
)

// centralMass is the mass of each galaxy's central body
const centralMass = 1000.0

// UniformRandom returns n bodies with mass drawn uniformly from
// [massMin, massMax), position components uniform on
// [-positionRange, positionRange) and velocity components uniform on
// [-velocityRange, velocityRange). The same seed always produces the same
// configuration.
func UniformRandom(n int, massMin, massMax, positionRange, velocityRange float64, seed uint64) []body.Body {
	rng := rand.New(rand.NewPCG(seed, seed))

	bodies := make([]body.Body, 0, n)
	for i := 0; i < n; i++ {
		m := uniform(rng, massMin, massMax)

		position := vector.NewVector3(
			uniform(rng, -positionRange, positionRange),
			uniform(rng, -positionRange, positionRange),
			uniform(rng, -positionRange, positionRange),
		)

		velocity := vector.NewVector3(
			uniform(rng, -velocityRange, velocityRange),
			uniform(rng, -velocityRange, velocityRange),
			uniform(rng, -velocityRange, velocityRange),
		)

		bodies = append(bodies, body.NewPointMass(m, position, velocity))
	}

	return bodies
}

// TwinGalaxies returns 2n+2 bodies forming two counter-rotating disks
// centered at (+positionRange, 0, 0) and (-positionRange, 0, 0). Disk bodies
// get Gaussian planar offsets with sigma = positionRange/4 and a flattened z,
// and orbit their galaxy's central heavy mass tangentially (see diskVelocity
// for the speed). The two central bodies start with opposite y velocities
// (0, +2.5, 0) and (0, -2.5, 0), perpendicular to the line joining them.
func TwinGalaxies(n int, massMin, massMax, positionRange float64, seed uint64) []body.Body {
	rng := rand.New(rand.NewPCG(seed, seed))

	centerA := vector.NewVector3(positionRange, 0, 0)
	centerB := vector.NewVector3(-positionRange, 0, 0)

	bodies := make([]body.Body, 0, 2*n+2)
	sigma := positionRange / 4

	for i := 0; i < n; i++ {
		mA := uniform(rng, massMin, massMax)
		mB := uniform(rng, massMin, massMax)

		positionA := vector.NewVector3(
			rng.NormFloat64()*sigma+positionRange,
			rng.NormFloat64()*sigma,
			0.5*rng.NormFloat64()*sigma, // flatten in z to create a disc
		)

		positionB := vector.NewVector3(
			rng.NormFloat64()*sigma-positionRange,
			rng.NormFloat64()*sigma,
			0.5*rng.NormFloat64()*sigma,
		)

		// Seen from +z, galaxy A swirls clockwise, galaxy B counterclockwise
		velocityA := diskVelocity(positionA, centerA, vector.NewVector3(0, 0, 1))
		velocityB := diskVelocity(positionB, centerB, vector.NewVector3(0, 0, -1))

		bodies = append(bodies,
			body.NewPointMass(mA, positionA, velocityA),
			body.NewPointMass(mB, positionB, velocityB),
		)
	}

	bodies = append(bodies,
		body.NewPointMass(centralMass, centerA, vector.NewVector3(0, 2.5, 0)),
		body.NewPointMass(centralMass, centerB, vector.NewVector3(0, -2.5, 0)),
	)

	return bodies
}

// diskVelocity returns the tangential orbital velocity of a disk body around
// its galaxy center: perpendicular to the radial direction in the plane
// selected by axis, with magnitude sqrt(centralMass / r) scaled by the sine
// of the angle between the radial direction and axis.
func diskVelocity(position, center, axis vector.Vector3) vector.Vector3 {
	radial := position.Sub(center)

	// The small offset keeps the speed finite for bodies spawned on top of
	// the galaxy center
	speed := math.Sqrt(centralMass) / math.Sqrt(radial.Length()+1e-4)

	return radial.Normalize().Cross(axis).Scale(speed)
}

// uniform draws a value uniformly from [min, max)
func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
