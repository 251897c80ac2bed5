package render

import "math"

// Torus geometry and projection constants. Ring radius 2, tube radius 1,
// viewer offset 5 along the depth axis; the 30:15 scale compensates for the
// 1:2 aspect of terminal cells, centered at (40, 12).
const (
	tau = 6.28 // sampling upper bound, matches the classic step counts

	stepOuter = 0.07 // ring angle j
	stepInner = 0.02 // tube angle i

	viewerDist = 5.0

	scaleX, scaleY   = 30.0, 15.0
	centerX, centerY = 40.0, 12.0

	lumScale = 8.0 // luminance magnitude, roughly [-11, 11] after scaling
)

// Render rebuilds the frame for one pair of rotation angles: a spins the
// torus about its own axis, b tilts the whole ring. Pure function of the
// two angles; both buffers are rebuilt from scratch.
func (f *Frame) Render(a, b float64) {
	f.Reset()

	sinA, cosA := math.Sincos(a)
	sinB, cosB := math.Sincos(b)

	for j := 0.0; j < tau; j += stepOuter {
		sinJ, cosJ := math.Sincos(j)
		ring := cosJ + 2 // tube center's distance from the torus axis

		for i := 0.0; i < tau; i += stepInner {
			sinI, cosI := math.Sincos(i)

			// Inverse viewer distance; larger means nearer
			d := 1 / (sinI*ring*sinA + sinJ*cosA + viewerDist)
			t := sinI*ring*cosA - sinJ*sinA

			x := int(centerX + scaleX*d*(cosI*ring*cosB-t*sinB))
			y := int(centerY + scaleY*d*(cosI*ring*sinB+t*cosB))

			// Rotated surface normal dotted with the light direction
			lum := int(lumScale * ((sinJ*sinA-sinI*cosJ*cosA)*cosB -
				sinI*cosJ*sinA - sinJ*cosA - cosI*cosJ*sinB))

			f.plot(x, y, d, lum)
		}
	}
}
