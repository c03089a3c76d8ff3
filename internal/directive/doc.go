// Package directive parses the option section of a pretty code insertion.
//
// An insertion value holds the source code,
// optionally followed by ":::" and a list of assignments:
//
//	def main():
//	    pass
//	:::lang=Python;showLines=1;startLine=10;hlLines=2,3;bkg=default
//
// Assignments are separated by ";" and take the form "name=value"
// or, failing that, "name:value".
// Parsing yields [Options] merged over persisted defaults.
package directive
