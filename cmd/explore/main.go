// Command explore browses the destination catalog from the terminal.
//
//	explore -link '/api/v1/destinations?categories=Beach&sortBy=price' -max-price 150
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/travelbanza/destination-catalog/internal/cli/explore"
)

func main() {
	if err := explore.Run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("explore: %v", err))
		if errors.Is(err, explore.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
