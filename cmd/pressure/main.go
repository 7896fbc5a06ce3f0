// Command pressure converts values between units of pressure.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lone-faerie/pressure/cmd"
)

func main() {
	err := cmd.Execute()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "Error:", err)

	var exit *cmd.ExitError
	if errors.As(err, &exit) {
		os.Exit(exit.Code)
	}
	os.Exit(cmd.ExitFailure)
}
