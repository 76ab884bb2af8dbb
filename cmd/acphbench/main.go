// Acphbench measures ACPH tree build time, lookup throughput, and
// efficiency against a key corpus, either generated in-process or
// loaded from a file, one key per line, mapped into memory.
//
// Usage:
//
//	go run ./cmd/acphbench -keys 1000000
//	go run ./cmd/acphbench -corpus words.txt
//
// Flags:
//
//	-keys     Number of random keys to generate (default: 1,000,000)
//	-keylen   Length in bytes of each generated key (default: 16)
//	-corpus   Path to a newline-delimited key file; overrides -keys
//	-prehash  Apply PreHash to every key before building (default: false)
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	mrand "math/rand/v2"
	"os"
	"time"

	"github.com/edsrzf/mmap-go"
	"github.com/spaolacci/murmur3"

	"github.com/asutherland/acph"
)

func main() {
	keysFlag := flag.Int("keys", 1_000_000, "number of random keys to generate")
	keylenFlag := flag.Int("keylen", 16, "length in bytes of each generated key")
	corpusFlag := flag.String("corpus", "", "path to a newline-delimited key file")
	prehashFlag := flag.Bool("prehash", false, "apply PreHash to every key before building")
	flag.Parse()

	var keys [][]byte
	if *corpusFlag != "" {
		var err error
		keys, err = loadCorpus(*corpusFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, "acphbench:", err)
			os.Exit(1)
		}
		fmt.Printf("Loaded %d keys from %s\n", len(keys), *corpusFlag)
	} else {
		keys = generateKeys(*keysFlag, *keylenFlag)
		fmt.Printf("Generated %d random keys of %d bytes\n", len(keys), *keylenFlag)
	}

	if *prehashFlag {
		fmt.Println("Pre-hashing keys...")
		for i, k := range keys {
			keys[i] = acph.PreHash(k)
		}
	}

	fmt.Println("Hashing keys with murmur3 (throughput baseline)...")
	hashStart := time.Now()
	seed := uint32(0x1234)
	for _, k := range keys {
		murmur3.Sum128WithSeed(k, seed)
	}
	hashDuration := time.Since(hashStart)

	payloads := make([]uint64, len(keys))
	for i := range payloads {
		payloads[i] = uint64(i)
	}

	fmt.Println("Building tree...")
	buildStart := time.Now()
	tree, err := acph.Build(keys, payloads)
	buildDuration := time.Since(buildStart)
	if err != nil {
		fmt.Fprintln(os.Stderr, "acphbench: build failed:", err)
		os.Exit(1)
	}

	fmt.Println("Querying every key...")
	queryStart := time.Now()
	var misses int
	for i, k := range keys {
		got, ok := tree.Find(k)
		if !ok || got != payloads[i] {
			misses++
		}
	}
	queryDuration := time.Since(queryStart)

	eff := tree.Efficiency()

	fmt.Println()
	fmt.Printf("murmur3 baseline:  %v (%.0f keys/sec)\n", hashDuration, rate(len(keys), hashDuration))
	fmt.Printf("build:             %v (%.0f keys/sec)\n", buildDuration, rate(len(keys), buildDuration))
	fmt.Printf("query (all keys):  %v (%.0f keys/sec), %d misses\n", queryDuration, rate(len(keys), queryDuration), misses)
	fmt.Printf("slots used:        %d\n", eff.SlotsUsed)
	fmt.Printf("empty slots:       %d\n", eff.EmptySlots)
	fmt.Printf("slot efficiency:   %.2f%%\n", eff.SlotEfficiency*100)
	fmt.Printf("max comparisons:   %d\n", eff.MaxComparisons)
}

func rate(n int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / d.Seconds()
}

// generateKeys produces n random byte-string keys of length keylen.
// Benchmark corpora need not be cryptographically unpredictable, so
// this uses math/rand/v2 rather than crypto/rand.
func generateKeys(n, keylen int) [][]byte {
	rng := mrand.New(mrand.NewPCG(1, 2))
	keys := make([][]byte, n)
	for i := range keys {
		k := make([]byte, keylen)
		for j := range k {
			k[j] = byte(rng.IntN(256))
		}
		keys[i] = k
	}
	return keys
}

// loadCorpus memory-maps path and splits it into one key per line,
// skipping empty lines. The file is scanned through the mapping
// instead of being read into a heap buffer, but each key is copied
// out of the mapping before it is unmapped, so the returned keys
// occupy heap memory.
func loadCorpus(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer m.Unmap()

	var keys [][]byte
	scanner := bufio.NewScanner(bytes.NewReader([]byte(m)))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		keys = append(keys, append([]byte(nil), line...))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}
