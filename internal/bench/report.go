package bench

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// Average summarises every run of one algorithm on one size.
type Average struct {
	Name        string
	DataSize    int
	Runs        int
	Duration    time.Duration
	Comparisons int
	MemoryBytes uint64
}

// Averages groups results by size and algorithm in first-seen order. Runner
// emits results size by size, so the groups of one size stay together.
func Averages(results []Result) []Average {
	type key struct {
		size int
		name string
	}
	index := make(map[key]int)
	var out []Average
	var totalDur []time.Duration
	var totalCmp []int
	var totalMem []uint64
	for _, r := range results {
		k := key{r.DataSize, r.Name()}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, Average{Name: k.name, DataSize: k.size})
			totalDur = append(totalDur, 0)
			totalCmp = append(totalCmp, 0)
			totalMem = append(totalMem, 0)
		}
		out[i].Runs++
		totalDur[i] += r.Duration
		totalCmp[i] += r.Comparisons
		totalMem[i] += r.MemoryBytes
	}
	for i := range out {
		n := out[i].Runs
		out[i].Duration = totalDur[i] / time.Duration(n)
		out[i].Comparisons = totalCmp[i] / n
		out[i].MemoryBytes = totalMem[i] / uint64(n)
	}
	return out
}

func WriteJSON(w io.Writer, s *Session) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

func WriteMarkdown(w io.Writer, s *Session) error {
	bw := bufio.NewWriter(w)
	var b strings.Builder

	b.WriteString("# Merge-insertion sort benchmark\n\n")
	fmt.Fprintf(&b, "Started: %s\n", s.StartedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "Seed: %d\n\n", s.Seed)

	var sizes []int
	seen := make(map[int]bool)
	for _, r := range s.Results {
		if !seen[r.DataSize] {
			seen[r.DataSize] = true
			sizes = append(sizes, r.DataSize)
		}
	}
	for _, size := range sizes {
		fmt.Fprintf(&b, "## %d elements\n\n", size)
		b.WriteString("| Algorithm | Run | Duration | Comparisons | Memory |\n")
		b.WriteString("|-----------|-----|----------|-------------|--------|\n")
		for _, r := range s.Results {
			if r.DataSize != size {
				continue
			}
			fmt.Fprintf(&b, "| %s | %d | %v | %s | %d bytes |\n",
				r.Name(), r.Run, r.Duration, comparisons(r.Comparisons), r.MemoryBytes)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Averages\n\n")
	b.WriteString("| Size | Algorithm | Duration | Comparisons | Memory |\n")
	b.WriteString("|------|-----------|----------|-------------|--------|\n")
	for _, a := range Averages(s.Results) {
		fmt.Fprintf(&b, "| %d | %s | %v | %s | %d bytes |\n",
			a.DataSize, a.Name, a.Duration, comparisons(a.Comparisons), a.MemoryBytes)
	}

	if _, err := bw.WriteString(b.String()); err != nil {
		return err
	}
	return bw.Flush()
}

// comparisons prints "-" for algorithms that do not count them.
func comparisons(n int) string {
	if n == 0 {
		return "-"
	}
	return fmt.Sprint(n)
}
