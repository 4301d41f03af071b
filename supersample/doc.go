// SPDX-License-Identifier: MIT

// Package supersample models the finite footprint of a magnetic sensor.
//
// What:
//
//   - Point2Grid expands each of N sensor centres into an ns×ns grid of
//     sub-points spanning the sensor's effective area, flattened into N·ns²
//     coordinates. Block i = [i·ns², (i+1)·ns²) belongs to centre i and is
//     ordered row-major over the local grid (rows step in y, columns in x).
//   - BlockMean reduces N·Q values back to N by averaging each block.
//   - Evaluate is the shared averaging primitive: with no effective area it
//     calls the kernel at the centres; otherwise it expands the centres with
//     FootprintResolution, calls the kernel once over all sub-points and
//     reduces per sensor.
//
// Units:
//
//   - Centres in metres; EffectiveArea side lengths in micrometres.
//     Sub-grid spacing is 1e-6·L/ns metres along each axis.
//   - The footprint lies in the sensor's own plane: z is replicated, never offset.
//
// Errors:
//
//   - ErrNonPositiveArea, ErrLengthMismatch, ErrEvenResolution. All checks run
//     before any allocation.
package supersample
