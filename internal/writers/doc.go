// Package writers turns a generated sheet into a serialized output file.
//
// Design:
//   • Writers own file handling (create/truncate, buffering, flush, close).
//   • Presentation of each format lives in internal/output.
//   • Formats are looked up in a registry populated in init().
package writers
