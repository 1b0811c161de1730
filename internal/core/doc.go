// Package core implements duplicate-row detection over uploaded tabular data.
//
// The package has no UI or transport dependencies. The web layer hands it raw
// uploaded bytes; core parses them into a Table, partitions the rows into the
// full original view and the subset of fully duplicated rows, and serializes
// that subset back to CSV for download. All state produced here is owned by
// the caller; nothing in this package outlives a single request.
package core
