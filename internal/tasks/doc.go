// Package tasks implements the documentation tasks: build, serve and publish.
//
// Each task is a linear sequence of steps against external collaborators
// (installer, generator, version control, browser). The first failing step
// aborts the task and its error is returned unchanged; nothing is retried or
// rolled back. Publish checks for its credential before any step runs.
package tasks
