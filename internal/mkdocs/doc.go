// Package mkdocs drives the mkdocs static site generator as an external tool.
//
// The generator is treated as a black box: Generator only assembles the
// command lines for its build, serve and gh-deploy subcommands and reports
// failures as tool errors carrying the child's exit status.
package mkdocs
