// Package dedup finds files that share a stem but differ in extension and
// resolves each such group down to one keeper.
//
// A run visits the input directory (and, when recursive, every subdirectory
// depth-first as it is met). Each visit:
//
//   - Scan lists the directory once and groups regular entries by stem.
//     Entries without an extension are ignored. Groups never span directories.
//   - SelectKeeper picks the member whose extension comes first in the keep
//     priority list. A group with no match is left alone.
//   - ResolveGroup asks, one candidate at a time, whether to delete the
//     other members or move them under the destination directory.
//
// Every filesystem call goes through an afero.Fs, and every question through
// a prompt.Confirmer. The first error aborts the run; actions already taken
// are not undone.
package dedup
