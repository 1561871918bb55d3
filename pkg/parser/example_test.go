package parser_test

import (
	"fmt"
	"log"

	"github.com/nauticalab/confline/pkg/parser"
)

// ExampleParser demonstrates registering typed options and applying a
// line-oriented config document to them.
func ExampleParser() {
	p := parser.New()

	var name string
	var count int
	var points []int

	if _, err := parser.AddOption(p, "name", &name); err != nil {
		log.Fatal(err)
	}
	countOpt, err := parser.AddOption(p, "count", &count)
	if err != nil {
		log.Fatal(err)
	}
	countOpt.Default(1)
	pointsOpt, err := parser.AddSliceOption(p, "points", &points)
	if err != nil {
		log.Fatal(err)
	}
	pointsOpt.Expected(3)

	if err := p.ApplyDefaults(); err != nil {
		log.Fatal(err)
	}

	lines := []string{
		"# demo configuration",
		"name:demo",
		"points:1,2,3",
	}
	if err := p.Parse(lines); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("name: %s\n", name)
	fmt.Printf("count: %d\n", count)
	fmt.Printf("points: %v\n", points)

	// Output:
	// name: demo
	// count: 1
	// points: [1 2 3]
}
