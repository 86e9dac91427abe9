// Package report renders an evaluation report.
//
// Four formats are supported: text (terminal tables), markdown, csv
// (one line per finding, for spreadsheets) and json. Table rendering is
// delegated to go-pretty; this package only decides what goes in which
// column.
package report
