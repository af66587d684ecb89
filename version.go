package main

// _version is the current version of docblock.
// It is replaced at release time with -ldflags.
var _version = "v0.1.0-dev"
