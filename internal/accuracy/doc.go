// Package accuracy cross-checks child records against the canonical parent
// records they cite.
//
// A child embeds a claimed parent key and claimed copies of parent fields,
// such as a data file citing its study's accession, title and award. Each
// child is resolved through a Lookup. Every designated field pair is then
// compared with the pair's Comparator, and each disagreement yields one
// finding carrying the canonical value as the suggested repair.
//
// Comparators are chosen per field pair. Exact is the default and is meant
// for canonical identifiers. PersonName is opt-in for person-name fields
// whose formatting legitimately differs ("Last, First" against "First Last").
package accuracy
