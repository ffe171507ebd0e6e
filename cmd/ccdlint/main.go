package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ccdkit/ccdlint/internal/adapters/inbound/cli"
	"github.com/ccdkit/ccdlint/internal/domain"
)

func main() {
	err := cli.Execute()
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	if errors.Is(err, domain.ErrSchemaLoad) {
		os.Exit(2)
	}
	os.Exit(1)
}
