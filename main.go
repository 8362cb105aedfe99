// Public domain.

package main

import "github.com/soniakeys/astrocal/internal/acprog"

func main() {
	acprog.Main()
}
