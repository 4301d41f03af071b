// Package magprism forward-models magnetic microscopy scans of a sample built
// from rectangular prisms, optionally sprinkled with magnetic grains.
//
// What is in the box?
//
//	A pure-Go toolkit for synthetic surveys:
//		• Kernels: second-derivative prism and sphere kernels, Bz and By in nT
//		• Models: prism arrays, random grains, angle ⇄ vector conversions
//		• Scans: rotated observation planes around the sample
//		• Sensors: point sampling or footprint averaging over the active area
//		• Inversion input: dense N×3P sensitivity matrices, gonum bridge
//
// Packages:
//
//	kernel/       prism & sphere kernels, field components, physical constants
//	mesher/       Prism, Sphere, Sample, RandomGrains, Ang2Vec/Vec2Ang
//	plane/        scanning planes (Alpha), regular grids, rotation, CoordPlane
//	supersample/  sensor footprints: Point2Grid, BlockMean, Evaluate
//	forward/      Field: the forward model, concurrent over sensors
//	sensitivity/  Jacobian: column blocks per prism, concurrent over prisms
//	matrix/       row-major Dense container, MatVec, AllClose, ToMat
//	residual/     normalized residuals and their statistics
//	cmd/magsim/   CLI running YAML scenarios
//
// Scanning planes (h is the sensor-to-sample distance):
//
//	         y+ (plane 1)
//	        ┌─────────┐
//	z- (0)  │ sample  │  z+ (2)
//	        └─────────┘
//	         y- (plane 3)
//
// Planes 0 and 2 read Bz, planes 1 and 3 read By.
//
//	go get github.com/katalvlaran/magprism
package magprism
