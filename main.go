// Public domain.

package main

import "github.com/geobridge/geobridge/internal/gbprog"

func main() {
	gbprog.Main()
}
