// Command sllist drives singly linked lists from operation scripts.
package main

import "github.com/mesh-intelligence/sllist/internal/cli"

func main() {
	cli.Execute()
}
