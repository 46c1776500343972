// Package cli implements the interactive shell and sample programs of the
// bindex command.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/alexhholmes/bindex"
)

var (
	found    = color.New(color.FgGreen).SprintFunc()
	notFound = color.New(color.FgRed).SprintFunc()
	heading  = color.New(color.FgCyan, color.Bold).SprintFunc()
)

type Cli struct {
	scanner *bufio.Scanner
	out     io.Writer
	tree    *bindex.Tree[string, string]
}

func NewCli(s *bufio.Scanner, out io.Writer, t *bindex.Tree[string, string]) *Cli {
	return &Cli{scanner: s, out: out, tree: t}
}

// Start reads commands until EXIT or end of input.
func (c *Cli) Start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		if !c.processInput(c.scanner.Text()) {
			return
		}
		c.printPrompt()
	}
}

func (c *Cli) printHelp() {
	fmt.Fprint(c.out, `
B-Tree CLI

Available Commands:
  SET <key> <val> Insert a key-value pair into the B-Tree
  GET <key>       Retrieve the value for key from the B-Tree
  DUMP            Print every pair in key order, indented by depth
  STATS           Print entry count, height and lookup cache statistics
  EXIT            Terminate this session
`+"\n")
}

func (c *Cli) printPrompt() {
	fmt.Fprint(c.out, "> ")
}

// processInput runs one command line and reports whether the session continues.
func (c *Cli) processInput(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return true
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		fmt.Fprintf(c.out, "Unknown command \"%s\"\n", command)
	case "set":
		c.processSetCommand(fields[1:])
	case "get":
		c.processGetCommand(fields[1:])
	case "dump":
		c.processDumpCommand()
	case "stats":
		c.processStatsCommand()
	case "exit":
		return false
	}
	return true
}

func (c *Cli) processSetCommand(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(c.out, "Usage: SET <key> <value>")
		return
	}
	if err := c.tree.Insert(args[0], args[1]); err != nil {
		if errors.Is(err, bindex.ErrKeyExists) {
			fmt.Fprintln(c.out, notFound("Key already exists."))
			return
		}
		fmt.Fprintln(c.out, notFound(err.Error()))
		return
	}
	c.processDumpCommand()
}

func (c *Cli) processGetCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: GET <key>")
		return
	}
	val, ok := c.tree.Get(args[0])
	if !ok {
		fmt.Fprintln(c.out, notFound("Key not found."))
		return
	}
	fmt.Fprintln(c.out, found(val))
}

func (c *Cli) processDumpCommand() {
	if err := c.tree.Dump(c.out); err != nil {
		fmt.Fprintln(c.out, notFound(err.Error()))
	}
}

func (c *Cli) processStatsCommand() {
	stats := c.tree.CacheStats()
	fmt.Fprintf(c.out, "len=%d height=%d capacity=%d cache_hits=%d cache_misses=%d\n",
		c.tree.Len(), c.tree.Height(), c.tree.Capacity(), stats.Hits, stats.Misses)
}

type sample struct {
	name   string
	keys   []int
	values []string
}

// samples are inserted in the listed order. The two level fixture, inserted
// ascending at capacity 2, settles as [3 8] over [1], [6] and [9 10].
var samples = []sample{
	{
		name:   "ascending insertion",
		keys:   []int{1, 3, 6, 8, 9, 10},
		values: []string{"foo", "abc", "blub", "bar", "abe", "bif"},
	},
	{
		name:   "descending insertion",
		keys:   []int{10, 9, 8, 6, 3, 1},
		values: []string{"bif", "abe", "bar", "blub", "abc", "foo"},
	},
	{
		name:   "two level fixture",
		keys:   []int{1, 3, 6, 8, 9, 10},
		values: []string{"123", "abc", "bar", "def", "foo", "blub"},
	},
}

// RunSamples builds each sample tree and prints its dump followed by lookups
// of present and absent keys.
func RunSamples(out io.Writer, capacity int, opts ...bindex.Option) error {
	for _, s := range samples {
		tree, err := bindex.New[int, string](capacity, opts...)
		if err != nil {
			return err
		}

		for i, key := range s.keys {
			if err := tree.Insert(key, s.values[i]); err != nil {
				return err
			}
		}
		if err := tree.Verify(); err != nil {
			return err
		}

		fmt.Fprintln(out, heading(fmt.Sprintf("%s, height %d", s.name, tree.Height())))
		if err := tree.Dump(out); err != nil {
			return err
		}
		for _, key := range []int{1, 3, 6, 8, 9, 10, 0, 2, 7, 100} {
			debugLookup(out, tree, key)
		}
		fmt.Fprintln(out)
	}
	return nil
}

func debugLookup(out io.Writer, tree *bindex.Tree[int, string], key int) {
	if val, ok := tree.Get(key); ok {
		fmt.Fprintf(out, "%d: %s\n", key, found(val))
		return
	}
	fmt.Fprintf(out, "%d: %s\n", key, notFound("Not found"))
}
