// Package calculator holds the meet engine: entry resolution, heat
// allocation, lane seeding, position recording and team points.
//
// Every function here is pure over its inputs (the heat allocator draws from
// an injected random source) and does no I/O. Callers load a models.Snapshot,
// run the engine and persist the result.
package calculator
