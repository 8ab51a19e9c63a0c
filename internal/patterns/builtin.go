package patterns

// GosperGun is the name of the built-in Gosper glider gun.
const GosperGun = "gosper-gun"

var builtin = NewCatalog()

func init() {
	if err := builtin.Register(New(GosperGun, gosperGun)); err != nil {
		panic(err)
	}
}

// Builtin returns a fresh catalog seeded with the built-in patterns.
func Builtin() *Catalog { return builtin.Clone() }

var gosperGun = []Offset{
	{0, 4}, {0, 5}, {1, 4}, {1, 5},
	{10, 4}, {10, 5}, {10, 6}, {11, 3}, {11, 7}, {12, 2}, {12, 8}, {13, 2}, {13, 8}, {14, 5},
	{15, 3}, {15, 7}, {16, 4}, {16, 5}, {16, 6}, {17, 5},
	{20, 2}, {20, 3}, {20, 4}, {21, 2}, {21, 3}, {21, 4}, {22, 1}, {22, 5}, {24, 0}, {24, 1},
	{24, 5}, {24, 6},
	{34, 2}, {34, 3}, {35, 2}, {35, 3},
}
