// keyid - identifier inspection CLI
//
// Usage:
//
//	keyid inspect [file]   Classify each input line and print kind, length, hash, JSON
//	keyid sort [file]      Sort input lines in identifier order and print them
//	keyid json [file]      Re-encode each input line through the JSON bridge
//	keyid combine A B      Print the composite identifier of two parts
//	keyid new [n]          Generate n fresh UUID identifiers (default 1)
//	keyid version          Print version info
//
// If no file is given, reads from stdin. One identifier per line; lines are
// taken verbatim, so whitespace is significant.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/Neumenon/keyid/keyid"
)

const libVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	var input io.Reader = os.Stdin

	// trailing non-flag argument is an input file for line-oriented commands
	fileArg := ""
	if len(os.Args) > 2 {
		fileArg = os.Args[2]
	}

	switch cmd {
	case "inspect", "sort", "json":
		if fileArg != "" && fileArg != "-" {
			f, err := os.Open(fileArg)
			if err != nil {
				fatal("open file: %v", err)
			}
			defer f.Close()
			input = f
		}
	}

	switch cmd {
	case "inspect":
		cmdInspect(input)
	case "sort":
		cmdSort(input)
	case "json":
		cmdJSON(input)
	case "combine":
		if len(os.Args) < 4 {
			fatal("combine needs exactly two arguments")
		}
		cmdCombine(os.Args[2], os.Args[3])
	case "new":
		n := 1
		if fileArg != "" {
			v, err := strconv.Atoi(fileArg)
			if err != nil || v < 1 {
				fatal("new: count must be a positive integer")
			}
			n = v
		}
		cmdNew(n)
	case "version", "-v", "--version":
		fmt.Printf("keyid %s\n", libVersion)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

// cmdInspect: one line per input identifier with its classification
func cmdInspect(r io.Reader) {
	forEachLine(r, func(line string) {
		id := keyid.Parse(line)
		data, err := json.Marshal(id)
		if err != nil {
			fatal("encode %q: %v", line, err)
		}
		fmt.Printf("%-10s len=%-3d hash=%016x json=%s\n", id.Kind(), id.Len(), id.Hash(), data)
	})
}

// cmdSort: total-order sort of the input identifiers
func cmdSort(r io.Reader) {
	var ids []keyid.Identifier
	forEachLine(r, func(line string) {
		ids = append(ids, keyid.Parse(line))
	})
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, id := range ids {
		fmt.Fprintln(w, id.String())
	}
}

// cmdJSON: round each identifier through the JSON bridge and print the token
func cmdJSON(r io.Reader) {
	forEachLine(r, func(line string) {
		data, err := json.Marshal(keyid.Parse(line))
		if err != nil {
			fatal("encode %q: %v", line, err)
		}
		var back keyid.Identifier
		if err := json.Unmarshal(data, &back); err != nil {
			fatal("decode %s: %v", data, err)
		}
		if back.String() != line {
			fatal("round-trip mismatch: %q -> %s -> %q", line, data, back.String())
		}
		fmt.Println(string(data))
	})
}

func cmdCombine(a, b string) {
	id := keyid.Combine(keyid.Parse(a), keyid.Parse(b))
	fmt.Println(id.String())
}

func cmdNew(n int) {
	for i := 0; i < n; i++ {
		fmt.Println(keyid.NewRandom().String())
	}
}

func forEachLine(r io.Reader, fn func(string)) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		fn(sc.Text())
	}
	if err := sc.Err(); err != nil {
		fatal("read input: %v", err)
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `keyid - identifier inspection CLI

Usage:
  keyid inspect [file]   Classify each input line and print kind, length, hash, JSON
  keyid sort [file]      Sort input lines in identifier order and print them
  keyid json [file]      Re-encode each input line through the JSON bridge
  keyid combine A B      Print the composite identifier of two parts
  keyid new [n]          Generate n fresh UUID identifiers (default 1)
  keyid version          Print version info

If no file is given, reads from stdin.

Examples:
  echo 0828398c-5965-11e0-84c8-0026b937c8e1 | keyid inspect
  # Output: uuid       len=36  hash=... json="0828398c-5965-11e0-84c8-0026b937c8e1"

  printf '999999999999\nhello\n' | keyid sort
  keyid combine hello world
  keyid new 3
`)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "keyid: "+format+"\n", args...)
	os.Exit(1)
}
