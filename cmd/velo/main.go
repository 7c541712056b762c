// Package main is the entry point for the velo command line tool, the
// interactive collaborator over the ride-log core.
package main

import "github.com/loicseguin/velolog/internal/cli"

func main() {
	cli.Execute()
}
