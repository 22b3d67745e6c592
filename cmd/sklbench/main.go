// Command sklbench replays a generated workload against a skip list and
// prints timing and structure statistics.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/sevetis/skiplist"
	"github.com/sevetis/skiplist/inspect"
	"github.com/sevetis/skiplist/workload"
)

func main() {
	var (
		n         int64
		ops       int
		runs      int
		seed      int64
		maxHeight int
		dist      string
		zipfS     float64
		insertPct int
		erasePct  int
		dump      bool
		levels    bool
	)

	flag.Int64Var(&n, "n", 1<<16, "key range [0, n)")
	flag.IntVar(&ops, "ops", 1_000_000, "operations per run")
	flag.IntVar(&runs, "runs", 5, "how many times to repeat the workload")
	flag.Int64Var(&seed, "seed", 42, "seed for the workload and the list")
	flag.IntVar(&maxHeight, "maxheight", skiplist.DefaultMaxHeight, "maximum node height")
	flag.StringVar(&dist, "dist", "uniform", "key distribution: uniform or zipf")
	flag.Float64Var(&zipfS, "zipf.s", 1.07, "zipf skew parameter (dist=zipf)")
	flag.IntVar(&insertPct, "insert", 40, "percentage of insert operations")
	flag.IntVar(&erasePct, "erase", 10, "percentage of erase operations")
	flag.BoolVar(&dump, "dump", false, "print the final structure as a (key, height) table")
	flag.BoolVar(&levels, "levels", false, "print the final per-level node counts")
	flag.Parse()

	if n <= 0 || ops < 0 || runs <= 0 {
		log.Fatalf("invalid -n, -ops, or -runs: n=%d ops=%d runs=%d", n, ops, runs)
	}

	var gen *workload.Generator
	switch dist {
	case "uniform":
		gen = workload.NewUniform(n, seed)
	case "zipf":
		gen = workload.NewZipf(n, zipfS, 1.0, seed)
	default:
		log.Fatalf("unknown -dist: %s", dist)
	}
	stream := gen.Ops(ops, insertPct, erasePct)

	fmt.Printf("ops: %d, dist: %s, insert/erase/lookup: %d/%d/%d%%\n",
		len(stream), dist, insertPct, erasePct, 100-insertPct-erasePct)

	durations := make([]float64, 0, runs)
	var last *skiplist.SkipList[int64]
	for i := 0; i < runs; i++ {
		l := skiplist.NewOrdered[int64](
			skiplist.WithMaxHeight(maxHeight),
			skiplist.WithSeed(uint64(seed)),
		)
		elapsed := replay(l, stream)
		durations = append(durations, float64(elapsed.Microseconds())/1000.0)
		last = l
	}

	if err := inspect.Validate(last, func(a, b int64) bool { return a < b }); err != nil {
		log.Fatalf("structure check failed: %v", err)
	}

	sort.Float64s(durations)
	sum := 0.0
	for _, d := range durations {
		sum += d
	}
	avg := sum / float64(len(durations))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Runs", "Avg(ms)", "Min(ms)", "Max(ms)", "Ops/s", "Final Size"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	table.Append([]string{
		strconv.Itoa(runs),
		fmt.Sprintf("%.3f", avg),
		fmt.Sprintf("%.3f", durations[0]),
		fmt.Sprintf("%.3f", durations[len(durations)-1]),
		fmt.Sprintf("%.2f", float64(len(stream))/(avg/1000.0)),
		strconv.Itoa(last.Size()),
	})
	table.Render()

	if levels {
		counts := inspect.LevelCounts(last)
		lt := tablewriter.NewWriter(os.Stdout)
		lt.SetHeader([]string{"Level", "Nodes"})
		for i := len(counts) - 1; i >= 0; i-- {
			lt.Append([]string{strconv.Itoa(i), strconv.Itoa(counts[i])})
		}
		lt.Render()
	}

	if dump {
		inspect.Fprint(os.Stdout, last)
	}
}

func replay(l *skiplist.SkipList[int64], stream []workload.Op) time.Duration {
	start := time.Now()
	for _, op := range stream {
		switch op.Kind {
		case workload.Lookup:
			l.Contains(op.Key)
		case workload.Insert:
			l.Insert(op.Key)
		case workload.Erase:
			l.Erase(op.Key)
		}
	}
	return time.Since(start)
}
