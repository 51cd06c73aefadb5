// Package geom implements bounded shapes and the spatial queries between them:
// containment, intersection, distance and closest point.
//
// Every shape is a plain value type and every query is a pure function of its
// arguments, so any number of goroutines may call into the package at once.
// Degenerate input (zero-length directions, parallel planes, zero-area
// triangles) never panics; each query documents the sentinel it returns
// instead, usually false, Disjoint or the zero vector.
//
// Planes follow the frustum convention: a point is in front of a plane when
// dot(Normal, p) + D > 0, and convex volumes (Frustum, Box) expose planes whose
// normals point inward.
package geom
