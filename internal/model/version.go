package model

// Version is the application version reported by --version and used for release checks.
const Version = "v0.3.1"
