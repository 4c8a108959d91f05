// Package application provides application initialization and dependency wiring.
// It encapsulates the creation of storage, calculator and console instances,
// making the main package cleaner and more focused on CLI parsing and
// orchestration.
package application
