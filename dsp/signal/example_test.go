package signal_test

import (
	"fmt"
	"math"

	"github.com/RupanjanSaha123/Realtimesignalvisualiser/dsp/core"
	"github.com/RupanjanSaha123/Realtimesignalvisualiser/dsp/signal"
)

func ExampleGenerator_Sine() {
	g := signal.NewGenerator(core.WithSampleRate(1000))
	x, err := g.Sine(250, 1, 5)
	if err != nil {
		panic(err)
	}
	for i := range x {
		if math.Abs(x[i]) < 1e-12 {
			x[i] = 0
		}
	}

	fmt.Printf("%.0f %.0f %.0f %.0f %.0f\n", x[0], x[1], x[2], x[3], x[4])

	// Output:
	// 0 1 0 -1 0
}

func ExampleGenerator_Square() {
	g := signal.NewGenerator(core.WithSampleRate(1000))
	x, err := g.Square(125, 1, 8)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.0f %.0f %.0f %.0f %.0f %.0f %.0f %.0f\n",
		x[0], x[1], x[2], x[3], x[4], x[5], x[6], x[7])

	// Output:
	// 1 1 1 1 1 -1 -1 -1
}
