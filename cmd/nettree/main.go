// Package main is the entry point for nettree.
package main

import "nettree/cmd/nettree/cmd"

func main() {
	cmd.Execute()
}
