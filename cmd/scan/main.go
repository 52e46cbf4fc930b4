package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/midikraft/nrpn/pkg/nrpn"
	"go.uber.org/zap"
)

var (
	fileFlag    = flag.String("f", "-", "The path to a control change capture,\none \"controller value\" pair per line, \"-\" reads stdin")
	verboseFlag = flag.Bool("v", false, "Log every consumed event")
)

func parseLine(line string) (nrpn.Event, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return nrpn.Event{}, fmt.Errorf("expected \"controller value\", got %q", line)
	}

	controller, err := strconv.ParseUint(fields[0], 10, 8)
	if err != nil {
		return nrpn.Event{}, err
	}

	value, err := strconv.ParseUint(fields[1], 10, 8)
	if err != nil {
		return nrpn.Event{}, err
	}

	if controller > 127 || value > 127 {
		return nrpn.Event{}, fmt.Errorf("out of 7-bit range: %q", line)
	}

	return nrpn.CC(uint8(controller), uint8(value)), nil
}

func scan(r io.Reader) error {
	decoder := nrpn.NewDecoder()
	scanner := bufio.NewScanner(r)

	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		event, err := parseLine(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}

		if !decoder.Consume(event) {
			scanLog.Debug("skipped",
				zap.Uint8("controller", event.Controller),
				zap.Uint8("value", event.Value))
			continue
		}

		scanLog.Debug("consumed",
			zap.Uint8("controller", event.Controller),
			zap.Uint8("value", event.Value),
			zap.String("state", decoder.String()))

		// CC38 closes a sequence; anything before that is an
		// intermediate state.
		if event.Controller == nrpn.CCValueLSB && decoder.Complete() {
			log.Println(decoder)
		}
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	if !decoder.Complete() {
		log.Printf("end of capture, %s", decoder)
	}

	return nil
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s \n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *verboseFlag {
		logger, err := zap.NewDevelopment()
		if err != nil {
			log.Fatal(err)
		}
		defer logger.Sync()
		enableDebugLogging(logger)
	}

	in := os.Stdin
	if *fileFlag != "-" {
		f, err := os.Open(*fileFlag)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	if err := scan(in); err != nil {
		log.Fatal(err)
	}
}
