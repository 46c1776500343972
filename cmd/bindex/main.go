package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-faker/faker/v4"
	"go.uber.org/zap"

	"github.com/alexhholmes/bindex"
	"github.com/alexhholmes/bindex/internal/cli"
	"github.com/alexhholmes/bindex/logger"
)

var (
	capacity  = flag.Int("capacity", 2, "maximum number of keys per node")
	demo      = flag.Bool("demo", false, "run the sample programs and exit")
	seed      = flag.Int("seed", 0, "insert this many random pairs before starting the shell")
	cacheSize = flag.Uint("cache", 0, "lookup cache entries (0 disables)")
	verbose   = flag.Bool("verbose", false, "log structural changes")
)

// seedTree inserts n pairs built from word. Pairs whose key collides with an
// earlier one are skipped; any other insert error is returned.
func seedTree(t *bindex.Tree[string, string], n int, word func() string) error {
	for i := 0; i < n; i++ {
		k := word() + word()
		v := word() + word()
		if err := t.Insert(k, v); err != nil && !errors.Is(err, bindex.ErrKeyExists) {
			return err
		}
	}
	return nil
}

func fakerWord() string {
	return faker.Word()
}

// cacheEntries bounds the -cache flag to what the lookup cache can address.
func cacheEntries(n uint) (uint32, error) {
	if n > math.MaxUint32 {
		return 0, fmt.Errorf("-cache %d exceeds maximum of %d entries", n, uint32(math.MaxUint32))
	}
	return uint32(n), nil
}

func main() {
	flag.Parse()

	entries, err := cacheEntries(*cacheSize)
	if err != nil {
		log.Fatal(err)
	}

	opts := []bindex.Option{bindex.WithLookupCache(entries)}
	if *verbose {
		zapLogger, err := zap.NewDevelopment()
		if err != nil {
			log.Fatal(err)
		}
		defer zapLogger.Sync()
		opts = append(opts, bindex.WithLogger(logger.NewZap(zapLogger)))
	}

	if *demo {
		if err := cli.RunSamples(os.Stdout, *capacity, opts...); err != nil {
			log.Fatal(err)
		}
		return
	}

	tree, err := bindex.New[string, string](*capacity, opts...)
	if err != nil {
		log.Fatal(err)
	}
	if *seed > 0 {
		if err := seedTree(tree, *seed, fakerWord); err != nil {
			log.Fatal(err)
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	shell := cli.NewCli(scanner, os.Stdout, tree)
	shell.Start()
}
