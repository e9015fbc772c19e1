// Package grid provides rectangular 2-D sample grids for image-domain
// processing.
//
// A [Grid] stores real-valued intensities in row-major order; a [Uint8Grid]
// stores the narrowed 8-bit result of a filter. Both are validated to be at
// least 1x1 and rectangular on construction. Helpers convert to and from
// grayscale [image.Image] values and compute mean-intensity profiles along
// either axis.
package grid
