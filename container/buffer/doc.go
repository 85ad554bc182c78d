// Package buffer provides the fixed-capacity storage primitive underneath
// the growable containers of this module. A Buffer owns a contiguous run of
// element slots and exposes exactly allocate, get, swap and release, so that
// growth policies built on top never manage raw storage themselves. Pool
// recycles released storage between buffers of the same element type.
package buffer
