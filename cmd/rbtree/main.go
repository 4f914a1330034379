package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/scottcagno/rbmap/pkg/logger"
	"github.com/scottcagno/rbmap/pkg/rbtree"
	"github.com/scottcagno/rbmap/pkg/util"
)

const usage = `usage: rbtree [flags] [key[=value] ...]

Builds a red-black tree from the given entries (or from stdin, one per
line, when none are given) and prints it.

flags:
`

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("rbtree", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	format := fs.String("format", "tree", "output format: tree, list or cbor")
	gen := fs.Int("gen", 0, "insert this many random uuid keys as well")
	level := fs.String("log", "warn", "log level: trace, debug, info, warn, error or off")
	check := fs.Bool("check", false, "verify invariants after every insert")
	maxBytes := fs.Int64("max-bytes", 0, "fail inserts once keys and values exceed this many bytes (0 is unlimited)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	lvl, err := logger.ParseLevel(*level)
	if err != nil {
		return err
	}
	log := logger.NewLogger(lvl)

	entries := fs.Args()
	if len(entries) == 0 && *gen == 0 {
		entries, err = readLines(stdin)
		if err != nil {
			return err
		}
	}

	alloc := rbtree.NewLimitAllocator(0, *maxBytes)
	tree := rbtree.NewRBTree(&rbtree.RBTreeConfig{
		Allocator:       alloc,
		Logger:          log,
		CheckInvariants: *check,
	})
	defer tree.Release()

	stop := util.Timer(log, "build")
	for _, e := range entries {
		k, v := splitEntry(e)
		if err := tree.Insert(k, v); err != nil {
			return fmt.Errorf("insert %q: %w", k, err)
		}
	}
	for _, k := range util.UUIDKeys(*gen) {
		if err := tree.Insert(k, nil); err != nil {
			return fmt.Errorf("insert %x: %w", k, err)
		}
	}
	stop()
	nodes, live := alloc.Live()
	log.Infof("entries=%d size=%d live.nodes=%d live.bytes=%d", tree.Len(), tree.Size(), nodes, live)

	switch *format {
	case "tree":
		_, err = io.WriteString(stdout, tree.Shape().String())
	case "list":
		w := bufio.NewWriter(stdout)
		tree.Scan(func(n *rbtree.Node) bool {
			_, err = fmt.Fprintf(w, "%q=%q\n", n.Key(), n.Value())
			return err == nil
		})
		if err == nil {
			err = w.Flush()
		}
	case "cbor":
		var data []byte
		data, err = rbtree.EncodeShape(tree.Shape())
		if err == nil {
			_, err = stdout.Write(data)
		}
	default:
		err = fmt.Errorf("unknown format %q", *format)
	}
	return err
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}

func splitEntry(e string) ([]byte, []byte) {
	b := []byte(e)
	if i := bytes.IndexByte(b, '='); i >= 0 {
		return b[:i], b[i+1:]
	}
	return b, nil
}
