package main

import (
	"fmt"
	"os"
	"os/exec"
)

// Pinned so CI and local runs agree on tool output.
const (
	staticcheckVersion = "honnef.co/go/tools/cmd/staticcheck@2025.1"
	gofumptVersion     = "mvdan.cc/gofumpt@v0.8.0"
)

type step struct {
	name string
	cmd  string
	args []string
}

func runCommand(cmd string, args []string) error {
	command := exec.Command(cmd, args...)
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr
	if err := command.Run(); err != nil {
		return fmt.Errorf("error running %s %v: %v", cmd, args, err)
	}
	return nil
}

func main() {
	steps := []step{
		{"go fmt", "go", []string{"fmt", "./..."}},
		{"go vet", "go", []string{"vet", "./..."}},
		{"golangci-lint", "golangci-lint", []string{"run", "./..."}},
		{"install staticcheck", "go", []string{"install", staticcheckVersion}},
		{"staticcheck", "staticcheck", []string{"./..."}},
		{"install gofumpt", "go", []string{"install", gofumptVersion}},
		{"gofumpt", "gofumpt", []string{"-l", "-w", "."}},
	}

	failed := 0
	for _, s := range steps {
		fmt.Printf("Running %s...\n", s.name)
		if err := runCommand(s.cmd, s.args); err != nil {
			fmt.Println(err)
			failed++
		}
	}

	if failed > 0 {
		fmt.Printf("Done with %d failing step(s).\n", failed)
		os.Exit(1)
	}
	fmt.Println("All checks completed!")
}
