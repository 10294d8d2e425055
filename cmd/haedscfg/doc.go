// Command haedscfg inspects haeds configuration files.
//
// It validates a configuration, renders its settings as a table, dumps them
// in the line-oriented diagnostic format, lists the sections a file declares,
// exports a valid configuration as JSON or TOML, and writes a sample file to
// start from. Every command except init loads the file given by --config, or
// data/config.ini when the flag is empty.
package main
