package httpcheck

// Version is the httpcheck release, printed by the CLI's --version flag.
const Version = "1.0.0"
