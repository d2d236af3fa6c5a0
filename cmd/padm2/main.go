// Command padm2 decides p-2-admissibility for a network file and reports
// (and optionally saves) the resulting ordering.
package main

import (
	"os"

	"github.com/katalvlaran/p2adm/driver"
)

func main() {
	os.Exit(driver.Execute())
}
