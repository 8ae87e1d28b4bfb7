// Package scanconfig implements the configuration round-trip: turning a
// device's discovered option set into a human-editable text file, and
// parsing that file back into typed values applied against a live device.
//
// The file format is line oriented:
//
//	# configuration options for fake:flatbed
//
//	[standard]
//	# Scan resolution
//	# Sets the resolution of the scanned image.
//	# resolution = 75|100|150|300|600
//	resolution = 100
//
// Comment lines start with '#', section headers are '[name]' and are a
// display aid only, everything else must be a 'name = value' line. On
// read, comments and sections are discarded; values travel as raw strings
// until Apply coerces them against the target option's type and
// constraints. The first invalid setting aborts the whole application;
// nothing applied before it is rolled back.
package scanconfig
