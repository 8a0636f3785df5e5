package misc

import (
	"fmt"
	"image/color"

	css "github.com/mazznoer/csscolorparser"
)

func ColorToNRGBA(clr color.Color) color.NRGBA {
	if clr == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(clr).(color.NRGBA)
}

func ColorToString(clr color.Color) string {
	c := ColorToNRGBA(clr)
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// ParseColorString accepts anything a CSS color property would,
// "#101010", "black", "rgb(10 10 10 / 50%)" and so on.
func ParseColorString(str string) (color.NRGBA, error) {
	c, err := css.Parse(str)

	if err != nil {
		return color.NRGBA{}, err
	}

	nrgba := color.NRGBA{
		R: uint8(255 * c.R),
		G: uint8(255 * c.G),
		B: uint8(255 * c.B),
		A: uint8(255 * c.A),
	}

	return nrgba, nil
}
