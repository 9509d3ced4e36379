// Package commands holds the cobra command tree of cj-gen-urbcsp.
//
// The root command generates one instance from positional arguments
// (n d c t s i [k]) or a --params YAML file and writes the document to
// stdout in a single write. Subcommands: inspect, version.
package commands
