package shape

import (
	"fmt"
	"math"
)

// Circle is defined by its radius.
type Circle struct{}

func (Circle) Name() string { return "circle" }

func (Circle) Description() string {
	return "A circle has a radius.  If the user provides the radius:\n\n" +
		usage("circle", "radius") + "\n\n" +
		"The program can calculate: perimeter, circumference, area"
}

func (Circle) RequiredParams() int { return 1 }

func (Circle) Calculate(params []float64) (Result, error) {
	r := params[0]
	circumference := 2 * math.Pi * r
	return Result{
		Shape:   "circle",
		Heading: "Circle with radius " + FormatValue(r),
		Inputs:  []Quantity{{Label: "radius", Value: r}},
		Quantities: []Quantity{
			{Label: "Circumference", Value: circumference},
			{Label: "Perimeter", Value: circumference},
			{Label: "Area", Value: math.Pi * r * r},
		},
	}, nil
}

// Square is defined by the length of its side.
type Square struct{}

func (Square) Name() string { return "square" }

func (Square) Description() string {
	return "A square has four sides that are of equal length.  If the user provides the length:\n\n" +
		usage("square", "length") + "\n\n" +
		"The program can calculate: perimeter, area"
}

func (Square) RequiredParams() int { return 1 }

func (Square) Calculate(params []float64) (Result, error) {
	s := params[0]
	return Result{
		Shape:   "square",
		Heading: "Square with side length " + FormatValue(s),
		Inputs:  []Quantity{{Label: "length", Value: s}},
		Quantities: []Quantity{
			{Label: "Perimeter", Value: 4 * s},
			{Label: "Area", Value: s * s},
		},
	}, nil
}

// Rectangle is defined by the lengths of its two side pairs.
type Rectangle struct{}

func (Rectangle) Name() string { return "rect" }

func (Rectangle) Description() string {
	return "A rectangle has 4 sides broken into 2 side pairs of equal length and are parallel.  " +
		"If the user provides the length of each pair:\n\n" +
		usage("rect", "length side 1", "length side 2") + "\n\n" +
		"The program can calculate: perimeter, area"
}

func (Rectangle) RequiredParams() int { return 2 }

func (Rectangle) Calculate(params []float64) (Result, error) {
	a, b := params[0], params[1]
	return Result{
		Shape:   "rect",
		Heading: fmt.Sprintf("Rectangle with sides %s and %s", FormatValue(a), FormatValue(b)),
		Inputs: []Quantity{
			{Label: "side1", Value: a},
			{Label: "side2", Value: b},
		},
		Quantities: []Quantity{
			{Label: "Perimeter", Value: 2 * (a + b)},
			{Label: "Area", Value: a * b},
		},
	}, nil
}

// Triangle is defined by its three side lengths. Sides that violate the
// triangle inequality produce a NaN area.
type Triangle struct{}

func (Triangle) Name() string { return "triangle" }

func (Triangle) Description() string {
	return "A triangle has three sides.  If the user provides the three side lengths:\n\n" +
		usage("triangle", "side1", "side2", "side3") + "\n\n" +
		"The program can calculate: perimeter, area (using Heron's formula)"
}

func (Triangle) RequiredParams() int { return 3 }

func (Triangle) Calculate(params []float64) (Result, error) {
	a, b, c := params[0], params[1], params[2]
	perimeter := a + b + c
	s := perimeter / 2
	return Result{
		Shape: "triangle",
		Heading: fmt.Sprintf("Triangle with sides %s, %s, and %s",
			FormatValue(a), FormatValue(b), FormatValue(c)),
		Inputs: []Quantity{
			{Label: "side1", Value: a},
			{Label: "side2", Value: b},
			{Label: "side3", Value: c},
		},
		Quantities: []Quantity{
			{Label: "Perimeter", Value: perimeter},
			{Label: "Area", Value: math.Sqrt(s * (s - a) * (s - b) * (s - c))},
		},
	}, nil
}
