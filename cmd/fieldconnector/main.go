// Command fieldconnector inspects host project config and reports how each
// field maps onto the connector's field type labels.
package main

import (
	"errors"
	"os"
)

func main() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := newRootCmd(a).Execute(); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			if exit.msg != "" {
				a.logger.Print(exit.msg)
			}
			os.Exit(exit.code)
		}
		a.logger.Print(err)
		os.Exit(exitSysError)
	}
}
