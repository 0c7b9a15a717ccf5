// Command pathfinding generates a random town and tours it with the exact
// branch-and-bound solver, the genetic algorithm, or both.
//
//	pathfinding evolve --cities 25 --budget 10s
//	pathfinding exact --cities 11 --bound minout
//	pathfinding compare --cities 10 --population 2000
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{}
	err := newRootCmd(a).ExecuteContext(ctx)
	a.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
