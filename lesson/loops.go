package lesson

import (
	"go.uber.org/zap"

	"github.com/peterouob/gobasics/tutorial"
)

func Loops(c *tutorial.Context) error {
	end := c.Config.RangeEnd
	for x := 0; x < end; x++ {
		c.Println(x)
	}

	done := false
	cnt := 0
	for !done {
		cnt++
		if cnt == c.Config.CountTo {
			done = true
		}
	}
	c.Log.Debug("Counted up", zap.Int("cnt", cnt))

	for done {
		cnt--
		if cnt == 0 {
			break
		}
	}
	c.Log.Debug("Counted down", zap.Int("cnt", cnt))

	for x := uint32(0); x < uint32(end); x++ {
		if x%2 == 0 {
			continue
		}
		c.Println(x)
	}
	return nil
}
