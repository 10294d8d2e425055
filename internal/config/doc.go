// Package config loads and validates the haeds configuration file.
//
// A configuration file is a sectioned key/value document (INI, or TOML with
// the same section and key names) carrying the Video, DecoderSharedMemory,
// Network, and Debug settings. Loading is a single short-circuiting pass: the
// file must exist, parse, and yield every required field in a fixed order.
// The outcome is always a *Snapshot; its result code and message describe
// whether the payload can be trusted.
//
// Snapshots are immutable. Accessors hand out copies, so a snapshot can be
// shared freely between goroutines once Load returns.
package config
