package pricing

// Rule is the closed set of pricing shapes a catalog entry can carry. Each
// shape reads only the fields it declares; Amount receives the unit count the
// entry consumes (hours, photo/video count) and ignores it where irrelevant.
type Rule interface {
	Amount(units int) float64
}

// Fixed is a flat price regardless of quantity.
type Fixed struct {
	Price float64
}

func (r Fixed) Amount(int) float64 { return r.Price }

// PerUnit prices strictly by count.
type PerUnit struct {
	UnitPrice float64
}

func (r PerUnit) Amount(units int) float64 {
	return float64(units) * r.UnitPrice
}

// TieredDuration covers a base allotment and charges an overage rate beyond
// it. At exactly IncludedUnits the price is the base, no overage.
type TieredDuration struct {
	Base             float64
	IncludedUnits    int
	OverageUnitPrice float64
}

func (r TieredDuration) Amount(units int) float64 {
	if units <= r.IncludedUnits {
		return r.Base
	}
	return r.Base + float64(units-r.IncludedUnits)*r.OverageUnitPrice
}

// ComboUnit is a fixed component plus a per-unit component, used for the
// combined video+photo packages.
type ComboUnit struct {
	FixedComponent float64
	UnitPrice      float64
}

func (r ComboUnit) Amount(units int) float64 {
	return r.FixedComponent + float64(units)*r.UnitPrice
}
