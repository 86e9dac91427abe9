// Package checksum fingerprints input files.
//
// Every file read during a run gets two SHA-256 checksums:
//
//   - Raw: hash of the exact bytes (detects any change)
//   - Normalized: hash after stripping a UTF-8 byte order mark, converting
//     CRLF and CR line endings to LF, trimming trailing whitespace on every
//     line and dropping trailing blank lines
//
// The normalized checksum stays equal when a spreadsheet is re-exported on
// another platform without content changes. Reports record both, and the
// run ID is derived from the normalized ones.
//
// # Example Usage
//
//	calculator := checksum.New()
//	fp := calculator.Fingerprint("studies.csv", content)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
