package lesson

import (
	"github.com/peterouob/gobasics/ordering"
	"github.com/peterouob/gobasics/result"
	"github.com/peterouob/gobasics/tutorial"
)

func Enums(c *tutorial.Context) error {
	switch ordering.Compare(c.Vars.X, c.Vars.Y) {
	case ordering.Less:
		c.Println("less")
	case ordering.Greater:
		c.Println("more")
	case ordering.Equal:
		c.Println("eq")
	}
	return nil
}

func TaggedUnions(c *tutorial.Context) error {
	var (
		rest result.StringResult = result.ErrorReason("not ok")
		res  result.StringResult = result.OK("this is ok!")
	)

	var inner string
	switch v := res.(type) {
	case result.OK:
		inner = string(v)
	case result.ErrorReason:
		inner = string(v)
	}
	inner2 := result.Inner(rest)

	c.Println(inner)
	c.Println(inner2)
	return nil
}
