package engine

// CalculateTip returns the tip owed on a bill at the given percentage,
// rounded to the cent. A non-positive bill or a negative percentage yields
// zero rather than an error; both mean "nothing to tip on yet".
func CalculateTip(bill, tipPercent float64) float64 {
	if bill <= 0 || tipPercent < 0 {
		return 0
	}
	return Round2(bill * tipPercent / 100)
}

// CalculateTotal returns bill plus tip, rounded to the cent.
func CalculateTotal(bill, tip float64) float64 {
	return Round2(bill + tip)
}
