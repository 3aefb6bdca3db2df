// Package graphio serializes the graph model to and from JSON so an
// external I/O layer can persist graphs round-trippably: a graph decoded
// from its own encoding behaves identically under every search algorithm.
//
// The document is a flat list of nodes sorted by name; each node carries
// its name, optional label, position, heuristic, display state, and the
// neighbor→weight map. Decoding validates what the graph model itself
// would reject — duplicate names, dangling neighbor references, negative
// weights or heuristics — and never silently drops an edge.
package graphio
