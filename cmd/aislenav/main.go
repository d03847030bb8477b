// SPDX-License-Identifier: MIT

// Command aislenav plans shopping routes over store layouts.
//
//	aislenav plan   --input request.json [--format geojson] [--categories dairy,bakery]
//	aislenav raster --input request.json [--buffer 2] [--window x,y,w,h]
//	aislenav config
//
// A .env file in the working directory is loaded before flags are parsed.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "aislenav:", err)
		os.Exit(1)
	}
}
