package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tatianab/treasure-hunter/internal/engine"
	"github.com/tatianab/treasure-hunter/internal/tui"
)

func main() {
	if err := tui.Start(); err != nil {
		if errors.Is(err, engine.ErrBankrupt) {
			os.Exit(2)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
