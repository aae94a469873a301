// Package lesson contains the handlers of the walkthrough. Each handler
// prints its narration through the tutorial context and may update the
// bindings carried to later lessons.
package lesson

import "github.com/peterouob/gobasics/tutorial"

// Bindings shows that a variable can be reassigned after it is declared.
func Bindings(c *tutorial.Context) error {
	y := c.Vars.Y
	c.Printf("y is %d\n", y)
	y++
	c.Printf("now it's %d\n", y)
	c.Vars.Y = y
	return nil
}

func If(c *tutorial.Context) error {
	x := c.Vars.X
	if x == 5 {
		c.Println("x is five!")
	}

	if c.Vars.Y == 1 {
		c.Println("yo")
	} else {
		c.Println("hey")
	}

	// A new binding per step instead of an if expression.
	y := 20
	if x == 5 {
		y = 10
	}
	z := y

	c.Vars.Y = y
	c.Vars.Z = z
	return nil
}

func Functions(c *tutorial.Context) error {
	printNumber(c, c.Vars.X)
	c.Vars.B = addOne(c.Vars.Z)
	return nil
}

func printNumber(c *tutorial.Context, x int) {
	c.Printf("x is: %d\n", x)
}

func addOne(x int) int {
	return x + 1
}
