// Package files provides the read-only file access used to load schemas and
// metadata records.
//
// Key interface:
//   - Provider: reads a file and expands a glob pattern into matching paths
//
// Implementations:
//   - OSProvider: production implementation using the OS filesystem
//   - FSProvider: wraps any fs.FS, used for the embedded builtin schemas
//     and for project directories (os.DirFS)
//   - MemoryProvider: in-memory implementation for testing
//
// All implementations return paths with forward slashes and in lexical order,
// so a run over the same inputs always sees records in the same order.
package files
