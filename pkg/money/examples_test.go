package money_test

import (
	"fmt"

	"github.com/amirasaad/fxcli/pkg/money"
)

// ExampleParseCode demonstrates normalizing a currency code typed by a user
func ExampleParseCode() {
	code, err := money.ParseCode(" eur ")
	fmt.Println(code, err)

	_, err = money.ParseCode("XYZ")
	fmt.Println(err)
	// Output:
	// EUR <nil>
	// unsupported currency code: "XYZ"
}

// ExampleFormat demonstrates rendering an amount with two decimals
func ExampleFormat() {
	fmt.Println(money.Format(100*0.92, money.AmountPlaces))
	// Output:
	// 92.00
}
