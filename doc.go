// Package algebra is a small, generic dense-matrix toolkit: build matrices,
// combine them, print them.
//
// 🚀 What is in the box?
//
//	• Constructors: Zeros, Ones, Identity and uniform Random (seedable)
//	• Kernels: sum/subtract, scalar multiply, matrix product, Hadamard, transpose
//	• Console display with centered fixed-width cells
//	• gonum/mat interop for everything this module does not do (solvers, decompositions)
//	• A JSON-driven CLI that runs matrix jobs and logs with zap
//
// ✨ Why use it?
//
//   - Generic – one API for int, uint and float element types
//   - Strict – shape errors are sentinels you can match with errors.Is
//   - Predictable – fixed loop orders, fresh results, inputs never mutated
//
// Layout:
//
//	matrix/      Dense[T], constructors, kernels, display, gonum interop
//	config/      JSON job format, validation and log levels
//	cmd/algebra/ the job runner
//
// Quick start:
//
//	go get github.com/katalvlaran/algebra/matrix
package algebra
