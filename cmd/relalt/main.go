package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"relalt/internal/altimeter"
	"relalt/internal/config"
	"relalt/internal/flightlog"
	"relalt/internal/gps"
)

func main() {
	var (
		configPath   string
		port         string
		baud         int
		baseReadings int
		summarize    string
	)
	flag.StringVar(&configPath, "config", "", "Path to YAML config (optional)")
	flag.StringVar(&port, "p", "", "Serial port to listen on, e.g. COM3 or /dev/ttyACM0 (prompts if omitted)")
	flag.IntVar(&baud, "baud", 0, "Serial baud rate (default 9600)")
	flag.IntVar(&baseReadings, "b", 0, "Number of readings averaged for ground altitude (default 50)")
	flag.StringVar(&summarize, "summarize", "", "Summarize a recorded NMEA log and exit")
	flag.Parse()

	if summarize != "" {
		if err := printLogSummary(os.Stdout, summarize); err != nil {
			log.Fatalf("summarize failed: %v", err)
		}
		return
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			log.Fatalf("config load failed: %v", err)
		}
	}
	// Flags override the config file.
	if port != "" {
		cfg.Port = port
	}
	if baud != 0 {
		cfg.Baud = baud
	}
	if baseReadings != 0 {
		cfg.BaseReadings = baseReadings
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("bad configuration: %v", err)
	}

	out := io.Writer(os.Stdout)
	lg, err := flightlog.Create(cfg.LogDir)
	if err != nil {
		log.Printf("flight log disabled: %v", err)
	} else {
		defer lg.Close()
		out = lg.Tee(os.Stdout)
		fmt.Fprintf(out, "Logging to %s\n", lg.Path)
	}

	if cfg.Port == "" {
		ports, err := gps.ListPorts()
		if err != nil {
			log.Fatalf("port enumeration failed: %v", err)
		}
		p, err := choosePort(out, os.Stdin, ports)
		if err != nil {
			log.Fatalf("port selection failed: %v", err)
		}
		cfg.Port = p
	}

	f, err := gps.Open(cfg.Port, cfg.Baud)
	if err != nil {
		log.Fatalf("could not open serial port %s: %v", cfg.Port, err)
	}
	defer f.Close()
	fmt.Fprintf(out, "Listening on %s at %d baud.\n", cfg.Port, cfg.Baud)

	// Runs until the process is killed; returns only if the stream ends,
	// which a real serial port never does.
	if err := run(out, gps.NewReader(f), cfg.BaseReadings); err != nil {
		log.Fatalf("gps read stopped: %v", err)
	}
}

// choosePort presents the enumerated serial ports and asks the user to pick
// one. A single discovered port is offered as the default.
func choosePort(out io.Writer, in io.Reader, ports []string) (string, error) {
	if len(ports) == 0 {
		return "", fmt.Errorf("no serial ports found")
	}

	fmt.Fprintf(out, "Available serial ports:\n")
	for _, p := range ports {
		fmt.Fprintf(out, "  %s\n", p)
	}

	if len(ports) == 1 {
		fmt.Fprintf(out, "Port to use (ENTER for %s): ", ports[0])
	} else {
		fmt.Fprintf(out, "Port to use: ")
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read port choice: %w", err)
	}
	choice := strings.TrimSpace(line)
	if choice == "" {
		if len(ports) == 1 {
			return ports[0], nil
		}
		return "", fmt.Errorf("no port chosen")
	}
	return choice, nil
}

// run calibrates the ground reference from the first n fixes, then prints
// relative altitude for every fix after that.
func run(w io.Writer, r *gps.Reader, n int) error {
	cal, err := altimeter.NewCalibrator(n)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Data is geoid altitude.\n")
	fmt.Fprintf(w, "Collecting %d base readings to establish ground altitude.\n", n)

	for {
		fix, err := r.Next()
		if err != nil {
			return err
		}
		alertUnit(w, fix)
		done := cal.Add(fix.AltitudeM)
		fmt.Fprintf(w, "Base reading %02d/%d... Sat: %d, Ground altitude: %.1f m\n",
			cal.Count(), n, fix.Satellites, fix.AltitudeM)
		if done {
			break
		}
	}

	ground, err := cal.Ground()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nGround altitude average set to %.2f m\n", ground.Level)
	fmt.Fprintf(w, "Sample variance: %.3f m^2\n", ground.Variance)
	fmt.Fprintf(w, "Sample standard deviation: %.3f m\n", ground.StdDev)
	fmt.Fprintf(w, "\nReady for flight.\n")

	for {
		fix, err := r.Next()
		if err != nil {
			return err
		}
		alertUnit(w, fix)
		fmt.Fprintf(w, "Sat: %d, Relative altitude: %s\n",
			fix.Satellites, altimeter.FormatRelative(ground.Relative(fix.AltitudeM)))
	}
}

// alertUnit flags readings whose unit letter is not meters. The reading is
// still used; u-blox receivers always report meters, so this firing at all
// means the receiver is misconfigured.
func alertUnit(w io.Writer, fix gps.Fix) {
	if fix.Unit != "M" {
		fmt.Fprintf(w, "Alert! Altitude was not given in meters, the unit was: %q\n", fix.Unit)
	}
}
