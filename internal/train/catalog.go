package train

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// D51 is the classic steam locomotive.
func D51() Definition {
	return Definition{
		Name:       "d51",
		Train:      frames(stack(d51Top, d51Wheels)),
		TrainSpeed: 2,
	}.WithSmoke(frames(smokeFrames), 0, 4)
}

// C51 is the larger express locomotive.
func C51() Definition {
	return Definition{
		Name:       "c51",
		Train:      frames(stack(c51Top, c51Wheels)),
		TrainSpeed: 2,
	}.WithSmoke(frames(smokeFrames), 4, 4)
}

// Logo is the small locomotive pulling a coal tender and two cars.
func Logo() Definition {
	rows := make([][]string, len(logoWheels))
	for i, w := range logoWheels {
		engine := append(append([]string{}, logoTop...), w...)
		rows[i] = beside(engine, logoCoal, logoCar, logoCar)
	}
	return Definition{
		Name:       "logo",
		Train:      frames(rows),
		TrainSpeed: 2,
	}.WithSmoke(frames(smokeFrames), 2, 4)
}

// Tram is a smokeless electric car.
func Tram() Definition {
	rows := make([][]string, len(tramWheels))
	for i, w := range tramWheels {
		rows[i] = append(append([]string{}, tramBody...), w)
	}
	return Definition{
		Name:       "tram",
		Train:      frames(rows),
		TrainSpeed: 3,
	}
}

// Accident is the D51 with passengers crying for help.
func Accident() Definition {
	rows := stack(d51Top, d51Wheels)
	for i := range rows {
		rows[i] = append([]string{accidentCries[i%len(accidentCries)]}, rows[i]...)
	}
	return Definition{
		Name:       "accident",
		Train:      frames(rows),
		TrainSpeed: 2,
	}.WithSmoke(frames(smokeFrames), 0, 4)
}

// Builtins lists the catalog in index order.
func Builtins() []Definition {
	return []Definition{D51(), C51(), Logo(), Tram()}
}

// Named returns the built-in or special train with the given name.
func Named(name string) (Definition, bool) {
	for _, d := range append(Builtins(), Accident()) {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return Definition{}, false
}

// ByIndex parses a user supplied catalog index.
func ByIndex(idx string) (Definition, error) {
	n, err := strconv.Atoi(strings.TrimSpace(idx))
	if err != nil {
		return Definition{}, fmt.Errorf("%w: %w", ErrInvalidIndex, err)
	}
	builtins := Builtins()
	if n < 0 || n >= len(builtins) {
		return Definition{}, &IndexError{Index: n, Count: len(builtins)}
	}
	return builtins[n], nil
}

// Random picks a built-in train.
func Random(rng *rand.Rand) Definition {
	builtins := Builtins()
	return builtins[rng.IntN(len(builtins))]
}
