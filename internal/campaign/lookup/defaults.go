package lookup

// CoinFlip is the built-in table every campaign starts with.
const CoinFlip = "Coin Flip"

// Defaults returns the built-in tables.
func Defaults() map[string]*Table {
	coin, err := NewTable(Spec{
		Name:        CoinFlip,
		Roll:        "1d2",
		Visible:     true,
		AllowLookup: true,
		Entries: []Entry{
			{Min: 1, Max: 1, Value: "Heads"},
			{Min: 2, Max: 2, Value: "Tails"},
		},
	})
	if err != nil {
		panic("lookup: invalid built-in table: " + err.Error())
	}
	return map[string]*Table{coin.Name(): coin}
}
