// Package execx runs the external tools doctasks orchestrates (pip, mkdocs).
//
// Commands are described by Command values and executed through a Runner.
// ExecRunner streams the child's output straight to the terminal so the
// tool's own error output is what the user sees; DryRunRunner only logs.
package execx
