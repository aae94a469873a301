package lesson

import "github.com/peterouob/gobasics/tutorial"

type pair struct {
	n int
	s string
}

func Tuples(c *tutorial.Context) error {
	first, _ := tuples(c)
	c.Vars.C = first
	return nil
}

func tuples(c *tutorial.Context) (int, int) {
	x := pair{1, "hello"}
	y := pair{n: 2, s: "hello2"}

	a, b := x.n, x.s
	c.Printf("%d, %s\n", a, b)

	if x == y {
		c.Println("yes!")
	}

	return 2, 3
}

type Point struct {
	X int
	Y int
}

func Structs(c *tutorial.Context) error {
	origin := Point{X: c.Vars.C, Y: c.Vars.B}
	c.Printf("The origin is at (%d, %d)\n", origin.X, origin.Y)

	point := Point{X: 1, Y: 2}
	c.Printf("This point is mutable: %d\n", point.X)
	point = Point{X: 3, Y: 4}
	c.Printf("Now the x coord is %d\n", point.X)
	return nil
}

// Color is a record whose fields are addressed by position.
type Color [3]int

// Inches wraps a single value in its own type.
type Inches int

func TupleStructs(c *tutorial.Context) error {
	rgb := Color{2, 3, 4}
	r := rgb[0]
	c.Printf("rgb r value is %d\n", r)

	length := Inches(10)
	intLength := int(length)
	c.Printf("length is %d inches\n", intLength)
	return nil
}
