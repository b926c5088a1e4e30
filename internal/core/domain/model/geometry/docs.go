// Package geometry implements the streaming binary mesh analyzer and the print
// property estimator built on top of its output.
//
// The analyzer consumes the fixed binary triangle-mesh layout (80-byte header,
// little-endian triangle count, 50-byte facet records) and produces aggregate
// properties: triangle count, bounding box, volume, surface area and a bounded
// preview sample. It never materializes the whole file, caps the number of
// records it reads and treats a truncated stream as a partial result rather
// than a failure. Text-encoded meshes are rejected outright.
//
// The estimator is a pure function mapping an analysis and a material density
// to weight, print duration and a difficulty tier.
package geometry
