package workload

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ugorji/go/codec"
)

// Report formats supported by Report.Write
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Report collects the results of a benchmark session.
type Report struct {
	Started   time.Time     `codec:"started" json:"started"`
	Elapsed   time.Duration `codec:"elapsed_ns" json:"elapsed_ns"`
	CacheHits uint64        `codec:"cache_hits" json:"cache_hits"`
	Results   []Result      `codec:"results" json:"results"`
}

// Failed returns the results whose tree failed validation.
func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.Valid {
			failed = append(failed, res)
		}
	}
	return failed
}

// Write renders the report in the given format.
func (r *Report) Write(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "", FormatText:
		return r.writeText(w)
	case FormatJSON:
		return r.writeJSON(w)
	default:
		return fmt.Errorf("unknown report format: %s (valid options: text, json)", format)
	}
}

func (r *Report) writeJSON(w io.Writer) error {
	var jh codec.JsonHandle
	jh.Indent = 2
	jh.HTMLCharsAsIs = true
	enc := codec.NewEncoder(w, &jh)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (r *Report) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ORDER\tSIZE\tROUND\tHEIGHT\tBOUND\tINSERT\tINSERT/S\tFIND\tERASE\tSTATUS")
	for _, res := range r.Results {
		status := "ok"
		if !res.Valid {
			status = "FAIL: " + res.Error
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\t%s\t%s\t%s\t%s\n",
			res.Order,
			humanize.Comma(int64(res.Size)),
			res.Round,
			res.Height,
			res.MaxHeight,
			res.Insert.Round(time.Microsecond),
			rate(res.Size, res.Insert),
			res.Find.Round(time.Microsecond),
			res.Erase.Round(time.Microsecond),
			status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s jobs in %s, %s key sets reused from cache, %d failed\n",
		humanize.Comma(int64(len(r.Results))),
		r.Elapsed.Round(time.Millisecond),
		humanize.Comma(int64(r.CacheHits)),
		len(r.Failed()))
	return err
}

// rate formats operations per second.
func rate(ops int, d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	return humanize.Comma(int64(float64(ops)/d.Seconds())) + "/s"
}
