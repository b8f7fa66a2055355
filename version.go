package espalier

// Version is the library version, overridable at build time via ldflags.
var Version = "0.3.1"
