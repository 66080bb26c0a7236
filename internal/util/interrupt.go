package util

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// SetupInterruptHandler calls stop on the first SIGINT/SIGTERM so a watch
// session can finish its pass and print the summary instead of dying
// mid-write. A second signal exits immediately.
func SetupInterruptHandler(stop func()) {
	sig := make(chan os.Signal, 2)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		fmt.Println("\nInterrupt received. Stopping after current pass...")
		stop()

		<-sig
		fmt.Println("\nExiting due to interrupt.")
		os.Exit(1)
	}()
}
