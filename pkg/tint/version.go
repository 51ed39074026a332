package tint

// Version is the release of the library and the tint command.
const Version = "0.1.0"
