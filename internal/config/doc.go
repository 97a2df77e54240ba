// Package config provides configuration for the csvcli tools.
//
// Configuration is layered: built-in defaults, an optional YAML file
// named by the CSVCLI_CONFIG environment variable, and CSVCLI_*
// environment variables, in increasing order of precedence. The
// result is validated before use.
//
// The package also owns parsing of the flag value formats shared by
// the CLIs: strict boolean strings (yes/no/true/false/t/f/y/n/1/0),
// single-character delimiters, and comma-separated column lists.
package config
