// Command calconsole is a host-side console for exercising the calibration
// core against the factory curve. Type an ADC code (or `convert <code>`) to
// see the fixed-point pressure; `fit` shows the extrapolation line, `table`
// the calibration range. A negative reading exits, as does `quit`.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/google/shlex"

	"pressurecode-go/drivers/hpx2710"
	"pressurecode-go/drivers/presscal"
)

func fmtCentiKPa(v int32) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/presscal.Scale, v%presscal.Scale)
}

// parseReading parses an ADC code, rejecting anything that does not fit in
// int32 rather than letting it wrap into a bogus in-range reading.
func parseReading(arg string) (int32, error) {
	code, err := strconv.ParseInt(arg, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(code), nil
}

func convert(cal presscal.Table, arg string) {
	code, err := parseReading(arg)
	if err != nil {
		fmt.Printf("bad reading %q: %v\n", arg, err)
		return
	}
	if code < 0 {
		os.Exit(0)
	}
	p, err := cal.ConvertChecked(code)
	if err != nil {
		fmt.Println("conversion failed:", err)
		return
	}
	first, last := int32(cal[0].ADC), int32(cal[len(cal)-1].ADC)
	regime := "interpolated"
	if code < first || code > last {
		regime = "extrapolated"
	}
	fmt.Printf("adc %d -> %d (%s kPa, %s)\n", code, p, fmtCentiKPa(p), regime)
}

func printTable(cal presscal.Table) {
	first, last := cal[0], cal[len(cal)-1]
	fmt.Printf("%d entries, adc %d..%d, pressure %s..%s kPa\n",
		len(cal), first.ADC, last.ADC, fmtCentiKPa(first.Pressure), fmtCentiKPa(last.Pressure))
}

func printFit(cal presscal.Table) {
	ln, err := cal.Fit()
	if err != nil {
		fmt.Println("fit failed:", err)
		return
	}
	sn, sd := ln.Slope()
	in, id := ln.Intercept()
	fmt.Printf("slope %.4f centi-kPa/count, intercept %.2f centi-kPa\n",
		float64(sn)/float64(sd), float64(in)/float64(id))
}

func main() {
	cal := hpx2710.FactoryCal

	fmt.Println("calconsole: enter an ADC reading to convert (0.01 kPa precision).")
	fmt.Println("Commands: convert <code> | table | fit | quit. Negative reading exits.")

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !in.Scan() {
			return
		}
		args, err := shlex.Split(in.Text())
		if err != nil {
			fmt.Println("parse error:", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "quit", "exit":
			return
		case "table":
			printTable(cal)
		case "fit":
			printFit(cal)
		case "convert":
			if len(args) != 2 {
				fmt.Println("usage: convert <code>")
				continue
			}
			convert(cal, args[1])
		default:
			// Bare number is shorthand for convert.
			convert(cal, args[0])
		}
	}
}
