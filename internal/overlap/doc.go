// Package overlap compares two watch-history exports and reports the films both
// exports share, keyed on the Letterboxd URI rather than on titles.
//
// Comparison is deliberately asymmetric: results carry the first source's
// version of each record and follow its order.
package overlap
