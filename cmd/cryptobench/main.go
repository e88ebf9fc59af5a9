// Command cryptobench is the interactive workbench for cryptocore: pick
// a file, a password, and an algorithm/mode/padding/KDF combination, and
// encrypt or decrypt it into a separate output file.
package main

import (
	"flag"
	"fmt"
	"os"

	"goxfer/cryptocore/consts"
	"goxfer/cryptocore/logger"
	"goxfer/cryptocore/logger/native"
	"goxfer/cryptocore/workbench"
)

func main() {
	dir := flag.String("dir", ".", "directory to browse")
	flag.Parse()

	var log logger.Logger
	if l, err := native.New(consts.LOGS_FILE_PATH, consts.LOGS_MAX_FILE_SIZE, consts.LOGS_MAX_TIME); err == nil {
		log = l
		defer log.Stop()
	}

	app, err := workbench.New(*dir, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
