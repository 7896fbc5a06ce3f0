package pressure_test

import (
	"fmt"
	"log"

	"github.com/lone-faerie/pressure"
)

func ExampleNew() {
	m, err := pressure.New(1, "bar")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(m)

	pa, _ := m.Value("Pa")
	fmt.Println(pa)

	// Output:
	// 100000 Pa
	// 100000
}

func ExampleParseUnit() {
	u, err := pressure.ParseUnit("standard atmosphere")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(u, u.Name(), u.IsSI())

	// Output:
	// atm StandardAtmosphere false
}

func ExampleDiff() {
	a, _ := pressure.New(2, "bar")
	b, _ := pressure.New(1, "bar")

	d, err := pressure.Diff(a, b)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(d.StringASCII("bar"))
	fmt.Println(d)

	// Output:
	// 1 bar <nil>
	// 100000 Pa
}

func ExampleUnits() {
	for _, u := range pressure.Units() {
		fmt.Printf("%-5s %-21s %v\n", u.SymbolASCII, u.NameStandard, u.IsSIUnit)
	}

	// Output:
	// Pa    Pascal                true
	// bar   Bar                   false
	// psi   Pound Per Square Inch false
	// atm   Standard Atmosphere   false
	// at    Technical Atmosphere  false
	// Torr  Torr                  false
}
