// Package main is the entry point for the beanlint CLI.
package main

import "beanlint.dev/pkg/beanlint/cmd"

func main() {
	cmd.Execute()
}
