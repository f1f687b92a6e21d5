package timeit

import (
	"sort"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/rodaine/table"
)

// # Record
//
// One completed measurement, as captured by the summary recorder.
type Record struct {
	Name     string
	Category string
	Depth    int
	Elapsed  time.Duration
}

// # SummaryRow
//
// Aggregated statistics over every recorded measurement sharing a name and
// a category.
type SummaryRow struct {
	Name     string
	Category string
	Calls    uint64
	Total    time.Duration
	Min      time.Duration
	Max      time.Duration
	Mean     time.Duration
}

var (
	// records holds every measurement completed while collection is enabled
	records []Record
	// collecting gates the recorder; off by default
	collecting bool
	// sumLock manages access to records and collecting
	sumLock sync.RWMutex
)

// CollectSummary turns the in-process recorder on or off. While enabled,
// every completed timer is also appended to the recorder, ready for
// [Summary] or [PrintSummary]. Collection is off by default.
func CollectSummary(enable bool) {
	sumLock.Lock()
	collecting = enable
	sumLock.Unlock()
}

// ResetSummary drops every record collected so far.
func ResetSummary() {
	sumLock.Lock()
	records = nil
	sumLock.Unlock()
}

func recordSample(name, category string, depth int, elapsed int64) {
	sumLock.Lock()
	if collecting {
		records = append(records, Record{
			Name:     name,
			Category: category,
			Depth:    depth,
			Elapsed:  time.Duration(elapsed),
		})
	}
	sumLock.Unlock()
}

// Summary aggregates the collected records per name and category.
// Rows are sorted by descending total time.
func Summary() []SummaryRow {
	sumLock.RLock()
	defer sumLock.RUnlock()

	index := make(map[[2]string]int)
	rows := make([]SummaryRow, 0)

	for _, r := range records {
		key := [2]string{r.Name, r.Category}
		i, ok := index[key]
		if !ok {
			i = len(rows)
			index[key] = i
			rows = append(rows, SummaryRow{
				Name:     r.Name,
				Category: r.Category,
				Min:      r.Elapsed,
				Max:      r.Elapsed,
			})
		}

		row := &rows[i]
		row.Calls++
		row.Total += r.Elapsed
		if r.Elapsed < row.Min {
			row.Min = r.Elapsed
		}
		if r.Elapsed > row.Max {
			row.Max = r.Elapsed
		}
	}

	for i := range rows {
		rows[i].Mean = rows[i].Total / time.Duration(rows[i].Calls)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Total > rows[j].Total })

	return rows
}

// PrintSummary generates and prints a table aggregating the collected
// records, one row per name and category pair.
func PrintSummary() {
	rows := Summary()

	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()

	tbl := table.New(
		"name",
		"category",
		"calls",
		"total",
		"min",
		"max",
		"mean",
	)
	tbl.WithHeaderFormatter(headerFmt)

	for _, r := range rows {
		tbl.AddRow(
			r.Name,
			r.Category,
			r.Calls,
			r.Total,
			r.Min,
			r.Max,
			r.Mean)
	}
	color.New(color.FgGreen).Add(color.Bold).Printf("\n⏱ Summary\n")
	tbl.Print()
}
