package lesson

import (
	"strings"

	"github.com/peterouob/gobasics/tutorial"
)

func Strings(c *tutorial.Context) error {
	literal := "Hello there"

	var sb strings.Builder
	sb.WriteString("Hello")
	sb.WriteString(", world")
	built := sb.String()
	c.Printf("literal: %s  built: %s\n", literal, built)

	view := built[:]
	c.Printf("converted: %s\n", view)
	return nil
}

func Arrays(c *tutorial.Context) error {
	arr := [3]int{1, 2, 3}
	arrr := [...]int{1, 2, 3}
	arrr[1] = 3
	// Array lengths are constants, so the configurable fill is a slice.
	arr2 := make([]int, c.Config.FillLen)

	for _, e := range arr {
		c.Println(e)
	}

	c.Printf("%d, %d\n", arrr[1], arr2[c.Config.FillIndex])
	return nil
}

func Vectors(c *tutorial.Context) error {
	v := []int{1, 2, 3}
	nums := v
	nums = append(nums, 4)
	c.Printf("the number of vals in vec is now %d\n", len(nums))
	return nil
}

func Slices(c *tutorial.Context) error {
	a := [...]int{0, 1, 2, 3, 4}
	middle := a[1:4]
	for _, e := range middle {
		c.Println(e)
	}
	return nil
}
