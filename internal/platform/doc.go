package platform

// Package platform contains OS integration glue: filesystem helpers, asset
// lookup, and revealing folders in the system file manager.
