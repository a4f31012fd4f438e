package pipeline

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"bookbridge/internal"
)

// Reporter accumulates skipped rows in arrival order and renders them
// as a table once the input stream has been fully consumed.
type Reporter struct {
	skipped []internal.SkipRecord
}

func NewReporter() *Reporter {
	return &Reporter{}
}

func (r *Reporter) Add(skip internal.SkipRecord) {
	r.skipped = append(r.skipped, skip)
}

func (r *Reporter) Count() int {
	return len(r.skipped)
}

// Render writes the report table. It writes nothing when no rows were
// skipped.
func (r *Reporter) Render(w io.Writer) error {
	if len(r.skipped) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "BookCode", "Title", "Reason"})
	table.SetAutoWrapText(false)
	for i, skip := range r.skipped {
		table.Append([]string{strconv.Itoa(i + 1), skip.Code, skip.Title, skip.Reason})
	}
	table.Render()
	return nil
}
