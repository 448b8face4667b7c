// Package grid implements the concrete and modifier grids of the Grid
// protocol: regular 2D/3D lattices (square, hex, triangle, cube), mesh-
// backed grids built from arbitrary MeshData, and a modifier chain
// (bound-by, mask, bijection, nested) that wraps any Grid in another.
//
// Every concrete grid answers TryMove purely from its own coordinate
// formulas; every modifier delegates to a wrapped Grid and narrows or
// remaps what it sees. Callers never need to know which variant they
// hold — the Grid interface is the only contract that matters.
package grid
