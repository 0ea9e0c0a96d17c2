package ordercheck

// Version is the current ordercheck release.
const Version = "0.1.0"
