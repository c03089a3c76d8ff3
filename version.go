package main

// _version is the version of prettycode.
// It's overridden at release time with -ldflags.
var _version = "dev"
