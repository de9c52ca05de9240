// Package graphsim simulates stabilizer quantum states as decorated graphs.
//
// A graph state on n qubits is |G⟩ = ∏_{(u,v)∈E} CZ_uv |+⟩^n. Each node also
// carries three flags that record a local Clifford applied on top:
//
//	ψ = ∏_v H_v^hollow · S_v^loop · Z_v^sign |G⟩
//
// Z acts first and H last. Gates, local complementation and Pauli measurements
// are rewrites of the graph and flags, so the cost of a simulation scales with
// node degrees instead of 2^n.
//
// Packages:
//
//	core/        decorated graph store: int node IDs, Flags, Store interface, map backend
//	treegraph/   ordered Store backend on red-black trees
//	graphstate/  the engine: H/S/Z, local complementation, E1/E2, fill, X/Y/Z measurement,
//	             VOPs, stabilizers, adjacency and state-vector export
//	clifford/    the 24-element single-qubit Clifford group and Pauli conjugation
//	statevec/    dense reference state vector for verification
//	bfs/         breadth-first traversal and connected components over a Store
//	builder/     standard topologies (linear/2D cluster, GHZ star, ring, random)
//	snapshot/    capture/restore and a badger-backed named snapshot store
//	program/     operation programs in YAML or a line-oriented text form
//	cmd/graphsim  CLI: run, build, show, list
//
// Quick example, a Bell pair:
//
//	0───1     edge (0,1), node 1 hollow  →  (|00⟩ + |11⟩)/√2
//
//	go get github.com/katalvlaran/graphsim
package graphsim
