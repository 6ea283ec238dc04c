package main

import "github.com/domino14/morris/runner"

func main() {
	runner.Main(runner.ABOpening)
}
