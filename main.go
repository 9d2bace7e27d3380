// Public domain.

package main

import "github.com/obsflow/epsconvert/internal/epsprog"

func main() {
	epsprog.Main()
}
