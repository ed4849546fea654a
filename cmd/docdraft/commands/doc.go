// Package commands implements the docdraft command line: a scripted compose
// command and an interactive terminal composer, both driving the same draft
// store, pickers and submission client as the HTTP service.
package commands
