// Package binloc derives canonical bin prefixes from warehouse location strings,
// tallies them, and expands bin ranges.
package binloc

import "regexp"

// prefixRegex matches the letter block and four-digit bin number at the start of a
// location such as C24490D, leaving out the level/slot suffix.
var prefixRegex = regexp.MustCompile(`^[A-Za-z]+\d{1,4}`)

// Prefix returns the canonical prefix of location. Values that do not start with
// letters followed by digits are returned unchanged so they are still counted.
func Prefix(location string) string {
	if m := prefixRegex.FindString(location); m != "" {
		return m
	}
	return location
}
