package main

import (
	"context"

	"go.llib.dev/frameless/pkg/cli"

	"github.com/adamluzsi/primes/internal/primecli"
)

func main() {
	cli.Main(context.Background(), primecli.NewMux())
}
