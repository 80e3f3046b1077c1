// Package git prepares the local repository for publishing the documentation
// site to a pages branch.
//
// This package handles:
//   - Adding an authenticated remote
//   - Fetching a remote's branches
//   - Fetching the pages branch into a local branch of the same name
//   - Redacting credentials from remote URLs before they are logged
//
// Operations run in-process through go-git against the repository that
// contains the working directory.
package git
