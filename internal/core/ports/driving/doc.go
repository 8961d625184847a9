// Package driving defines the primary ports of the hexagon: the use-case
// interfaces offered to driving adapters such as the CLI.
package driving
