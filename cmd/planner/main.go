// Command planner is the interactive CLI driver spec.md §1 calls out
// as an external collaborator: it loads a model from the registry,
// evaluates a formula against it, and prints the resulting policy and
// induced LTS. Adapted from the teacher's root main.go menu loop;
// unlike the teacher it never talks to an LLM — generating a model
// from an English description is out of this spec's scope, and no
// domain dependency in the retrieved corpus offers an LLM client
// groundable here.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mrieker/alphactl"
	"github.com/mrieker/alphactl/display"
	"github.com/mrieker/alphactl/models"
)

func main() {
	fmt.Println("=== alphactl: α-CTL nondeterministic-planning model checker ===")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	for {
		printMenu()
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(input)

		switch input {
		case "1":
			listModels()
		case "2":
			runQuery(reader)
		case "3":
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Invalid option")
		}
	}
}

func printMenu() {
	fmt.Println("Options:")
	fmt.Println("1. List registered models")
	fmt.Println("2. Check a formula against a model")
	fmt.Println("3. Exit")
	fmt.Print("\nSelect option: ")
}

func listModels() {
	fmt.Println("\nRegistered models:")
	for _, id := range models.All() {
		m, _ := models.Get(id)
		fmt.Printf("  %d: %s\n", id, m.Name())
		for _, f := range m.Formulas() {
			fmt.Printf("       %-32s %s\n", f.Name, f.Description)
		}
	}
	fmt.Println()
}

func runQuery(reader *bufio.Reader) {
	fmt.Print("\nModel id: ")
	idLine, _ := reader.ReadString('\n')
	id, err := strconv.Atoi(strings.TrimSpace(idLine))
	if err != nil {
		fmt.Printf("invalid model id: %v\n", err)
		return
	}

	fmt.Print("Formula (e.g. ag(ef(p))): ")
	formulaLine, _ := reader.ReadString('\n')
	f, err := planner.Parse(strings.TrimSpace(formulaLine))
	if err != nil {
		fmt.Printf("parse error: %v\n", err)
		return
	}

	lts, err := models.Lookup(id)
	if err != nil {
		fmt.Printf("evaluation error: %v\n", err)
		return
	}
	pi, err := planner.Sat(lts, f)
	if err != nil {
		fmt.Printf("evaluation error: %v\n", err)
		return
	}
	induced, err := planner.Induced(lts, pi)
	if err != nil {
		fmt.Printf("evaluation error: %v\n", err)
		return
	}

	fmt.Println("\nPolicy:")
	fmt.Print(display.Policy(pi))

	fmt.Println("\nInduced LTS (Graphviz DOT):")
	fmt.Println(display.DOT(induced))

	fmt.Println("\nInduced LTS (TLA+, for documentation):")
	fmt.Println(display.TLAPlus(induced, "Induced"))
}
