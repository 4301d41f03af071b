// SPDX-License-Identifier: MIT

// Package residual summarizes the misfit between observed and predicted data:
// the residual r = observed - predicted, its mean and population standard
// deviation, and the normalized residual (r - mean) / std.
package residual
