// Package aisearch is a steppable graph-search playground: build a small
// spatial graph, point an agent at it, and replay any of eight classic
// strategies one observation point at a time.
//
// 🚀 What is ai-search?
//
//	An in-memory search engine built for visual playback:
//		• Graph model: named nodes with (x, y) positions, heuristics and
//		  display states, directed weighted edges
//		• Uninformed strategies: BFS, DFS, depth-limited, iterative deepening
//		• Informed strategies: uniform-cost, greedy best-first, A*
//		• Bidirectional: two FIFO fronts meeting in the middle
//		• Pull-based runs: every snapshot is an independent copy, pulled at
//		  the caller's pace
//		• Deterministic: neighbor expansion is ordered by (x, y) position,
//		  so identical inputs replay identical step sequences
//
// Everything is organized under five subpackages plus a serving binary:
//
//	graph/    — nodes, edges, display states & position-ordered expansion
//	frontier/ — the FIFO, LIFO and priority frontiers behind the strategies
//	search/   — the Agent, the eight strategies, snapshots & outcomes
//	graphio/  — the JSON wire form of a graph
//	playback/ — graph & run sessions behind a single mutex
//	server/   — the HTTP playback surface
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	a square of four nodes; BFS from A reaches D in two steps.
//
//	go get github.com/kavindamihiran/ai-search
package aisearch
