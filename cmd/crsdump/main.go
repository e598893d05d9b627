// Command crsdump exercises the WKT/PROJ-string codec pair from the
// command line: wkt2proj4 and proj2wkt convert between the two textual
// forms, identify reports whether a string parses as WKT or as a PROJ
// string, with the resulting CRS kind and name; it does not report the
// WKT dialect or the PROJ convention.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/flywave/go-crs/projstring"
	"github.com/flywave/go-crs/wkt"
)

var usageStr = `
Usage: crsdump <command> [text]

Commands:
	wkt2proj4 <wkt-text>     Parse WKT and print the flat PROJ string
	proj2wkt  <proj-text>    Parse a PROJ string and print WKT2:2018
	identify  <text>         Report whether text parses as WKT or PROJ, with the CRS kind and name
`

func main() {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usageStr) }
	flag.Parse()
	args := flag.Args()
	if len(args) < 2 {
		flag.Usage()
		os.Exit(2)
	}
	cmd, text := args[0], args[1]
	var err error
	switch cmd {
	case "wkt2proj4":
		err = wkt2proj4(text)
	case "proj2wkt":
		err = proj2wkt(text)
	case "identify":
		err = identify(text)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("crsdump: %v", err)
	}
}

func wkt2proj4(text string) error {
	c, err := wkt.Parse(text)
	if err != nil {
		return err
	}
	out, err := projstring.Emit(c, projstring.Options{Convention: projstring.Flat})
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func proj2wkt(text string) error {
	c, err := projstring.Parse(text)
	if err != nil {
		return err
	}
	out, err := wkt.Emit(c, wkt.WKT2_2018, wkt.Options{})
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func identify(text string) error {
	if c, err := wkt.Parse(text); err == nil {
		fmt.Printf("WKT: kind=%d name=%s\n", c.Kind(), c.CRSName())
		return nil
	}
	if c, err := projstring.Parse(text); err == nil {
		fmt.Printf("PROJ: kind=%d name=%s\n", c.Kind(), c.CRSName())
		return nil
	}
	return fmt.Errorf("text did not parse as WKT or PROJ")
}
