package icgen

import (
	"math"
	"testing"

	"github.com/alexanderi96/go-nbody/core/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUniformRandomRanges verifies that every drawn value respects its range
func TestUniformRandomRanges(t *testing.T) {
	bodies := UniformRandom(200, 1, 10, 100, 0.1, 1234)
	require.Len(t, bodies, 200)

	for _, b := range bodies {
		assert.GreaterOrEqual(t, b.Mass(), 1.0)
		assert.Less(t, b.Mass(), 10.0)

		for _, c := range b.Position().ToArray() {
			assert.GreaterOrEqual(t, c, -100.0)
			assert.Less(t, c, 100.0)
		}
		for _, c := range b.Velocity().ToArray() {
			assert.GreaterOrEqual(t, c, -0.1)
			assert.Less(t, c, 0.1)
		}
	}
}

// TestUniformRandomReproducible verifies that the same seed yields the same
// configuration and a different seed a different one
func TestUniformRandomReproducible(t *testing.T) {
	a := UniformRandom(50, 1, 10, 100, 0.1, 42)
	b := UniformRandom(50, 1, 10, 100, 0.1, 42)
	c := UniformRandom(50, 1, 10, 100, 0.1, 43)

	for i := range a {
		assert.Equal(t, a[i].Mass(), b[i].Mass())
		assert.Equal(t, a[i].Position().ToArray(), b[i].Position().ToArray())
		assert.Equal(t, a[i].Velocity().ToArray(), b[i].Velocity().ToArray())
	}

	same := true
	for i := range a {
		if a[i].Position().ToArray() != c[i].Position().ToArray() {
			same = false
			break
		}
	}
	assert.False(t, same, "different seeds must yield different configurations")
}

// TestTwinGalaxiesShape verifies the body count and the two central masses
func TestTwinGalaxiesShape(t *testing.T) {
	n := 100
	positionRange := 30.0
	bodies := TwinGalaxies(n, 0.1, 0.5, positionRange, 1234)

	require.Len(t, bodies, 2*n+2)

	// The two central bodies close the sequence
	centerA := bodies[2*n]
	centerB := bodies[2*n+1]

	assert.Equal(t, centralMass, centerA.Mass())
	assert.Equal(t, centralMass, centerB.Mass())
	assert.Equal(t, [3]float64{positionRange, 0, 0}, centerA.Position().ToArray())
	assert.Equal(t, [3]float64{-positionRange, 0, 0}, centerB.Position().ToArray())
	assert.Equal(t, [3]float64{0, 2.5, 0}, centerA.Velocity().ToArray())
	assert.Equal(t, [3]float64{0, -2.5, 0}, centerB.Velocity().ToArray())
}

// TestTwinGalaxiesOrbits verifies that disk bodies move tangentially around
// their galaxy center at speed sqrt(centralMass / r)
func TestTwinGalaxiesOrbits(t *testing.T) {
	positionRange := 30.0
	bodies := TwinGalaxies(50, 0.1, 0.5, positionRange, 1234)

	centers := []vector.Vector3{
		vector.NewVector3(positionRange, 0, 0),
		vector.NewVector3(-positionRange, 0, 0),
	}

	axes := []vector.Vector3{
		vector.NewVector3(0, 0, 1),
		vector.NewVector3(0, 0, -1),
	}

	// Disk bodies alternate between galaxy A and galaxy B
	for i := 0; i < 100; i++ {
		b := bodies[i]
		center := centers[i%2]

		radial := b.Position().Sub(center)
		v := b.Velocity()

		// Tangential: orthogonal to the radial direction
		cosAngle := radial.Normalize().Dot(v.Normalize())
		assert.InDelta(t, 0, cosAngle, 1e-9, "body %d velocity must be tangential", i)

		// The orbital speed sqrt(centralMass / r) is reduced by the tilt of
		// the radial direction out of the disk plane
		tilt := radial.Normalize().Cross(axes[i%2]).Length()
		expectedSpeed := tilt * math.Sqrt(centralMass) / math.Sqrt(radial.Length()+1e-4)
		assert.InDelta(t, expectedSpeed, v.Length(), 1e-9*(1+expectedSpeed), "body %d speed", i)
	}
}

// TestTwinGalaxiesCounterRotation verifies that the two disks swirl in
// opposite directions
func TestTwinGalaxiesCounterRotation(t *testing.T) {
	positionRange := 30.0
	bodies := TwinGalaxies(50, 0.1, 0.5, positionRange, 1234)

	centers := []vector.Vector3{
		vector.NewVector3(positionRange, 0, 0),
		vector.NewVector3(-positionRange, 0, 0),
	}

	// The z component of the angular momentum about the galaxy center has
	// one sign for galaxy A and the opposite for galaxy B
	for i := 0; i < 100; i++ {
		b := bodies[i]
		center := centers[i%2]

		radial := b.Position().Sub(center)
		lz := radial.Cross(b.Velocity()).Z()

		if i%2 == 0 {
			assert.Less(t, lz, 0.0, "galaxy A body %d must swirl clockwise seen from +z", i)
		} else {
			assert.Greater(t, lz, 0.0, "galaxy B body %d must swirl counterclockwise seen from +z", i)
		}
	}
}
