package main

import (
	"fmt"
	"os"
)

func main() {
	os.Exit(run())
}

func run() int {
	e := &env{}
	// cobra no ejecuta PersistentPostRun si el comando falla
	defer e.close()
	if err := newRootCmd(e).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
