// Package fsutil provisions directories and reports free space for the
// filesystems that hold them.
//
// Three operations are provided, each available as a blocking method on
// [Utils], as a package-level function backed by the OS, and in an
// asynchronous form returning a [Result]:
//
//   - GetFsStats queries statfs(2) for the filesystem containing a path and
//     derives the available space in megabytes.
//   - EnsureDir returns the stat of a directory, creating it and any missing
//     parents with mode 0755 when it does not exist. An existing path that is
//     not a directory fails with an [ErrnoError] whose code is ENOTDIR.
//   - EnsureAndStat runs EnsureDir and then GetFsStats on the same path,
//     attaching the volume statistics to the directory stat.
//
// Every path is cleaned with filepath.Clean before use. OS errors are
// returned unchanged; none of the operations retry or log failures.
package fsutil
