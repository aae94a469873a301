package config

import "github.com/go-faster/errors"

type Config struct {
	// Seeds for the bindings carried between lessons.
	X int
	Y int

	RangeEnd  int
	CountTo   int
	FillLen   int
	FillIndex int

	Color    bool
	Headings bool
}

func NewConfig() *Config {
	return &Config{
		X:         5,
		Y:         1,
		RangeEnd:  10,
		CountTo:   3,
		FillLen:   20,
		FillIndex: 10,
		Color:     true,
		Headings:  true,
	}
}

func (c *Config) Validate() error {
	switch {
	case c.RangeEnd < 0:
		return errors.Errorf("range end %d is negative", c.RangeEnd)
	case c.CountTo < 1:
		return errors.Errorf("count %d must be positive", c.CountTo)
	case c.FillLen < 1:
		return errors.Errorf("fill length %d must be positive", c.FillLen)
	case c.FillIndex < 0 || c.FillIndex >= c.FillLen:
		return errors.Errorf("fill index %d out of range [0, %d)", c.FillIndex, c.FillLen)
	}
	return nil
}
