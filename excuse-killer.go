package main

import (
	"context"
	"log"

	"github.com/Omkarop0808/Excuse-Killer/pkg/commands"
)

func main() {
	if err := commands.New().ExecuteContext(context.Background()); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
