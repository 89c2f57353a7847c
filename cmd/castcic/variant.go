package main

import "github.com/pleiad/castcic/internal/typeutil"

// parseVariant resolves the --variant flag's value into a
// typeutil.Variant, defaulting to G on anything unrecognized.
func parseVariant(name string) typeutil.Variant {
	switch name {
	case "N", "n":
		return typeutil.N
	case "S", "s":
		return typeutil.S
	default:
		return typeutil.G
	}
}
