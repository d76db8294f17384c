package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"procuptime/internal/parse"
)

var (
	labelColor = color.New(color.FgCyan)
	okColor    = color.New(color.FgGreen, color.Bold)
	failColor  = color.New(color.FgRed, color.Bold)
	dimColor   = color.New(color.Faint)
)

// unknown is shown in place of an unavailable uptime. It is never rendered as 0.
const unknown = "unknown"

// textRenderer is implemented by reports that have a human-readable form.
type textRenderer interface {
	renderText(w io.Writer) error
}

// Render writes v to w in the given format (json, yaml or text).
func Render(w io.Writer, format string, v any) error {
	switch format {
	case parse.OutputJSON, "":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case parse.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to marshal output YAML: %w", err)
		}
		return enc.Close()
	case parse.OutputText:
		tr, ok := v.(textRenderer)
		if !ok {
			return fmt.Errorf("no text form for %T", v)
		}
		return tr.renderText(w)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func status(ok bool) string {
	if ok {
		return okColor.Sprint("available")
	}
	return failColor.Sprint(unknown)
}

func (r *UptimeReport) renderText(w io.Writer) error {
	value := failColor.Sprint(unknown)
	if r.Available {
		value = okColor.Sprint(r.Uptime)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", labelColor.Sprint("uptime"), value)
	fmt.Fprintf(tw, "%s\t%d\n", labelColor.Sprint("pid"), r.PID)
	fmt.Fprintf(tw, "%s\t%s %s\n", labelColor.Sprint("strategy"), r.Strategy,
		dimColor.Sprintf("(resolution %s, spawns process: %t, async: %t)", r.Resolution, r.SpawnsProcess, r.Async))
	fmt.Fprintf(tw, "%s\t%s/%s\n", labelColor.Sprint("platform"), r.OS, r.Arch)
	fmt.Fprintf(tw, "%s\t%s\n", labelColor.Sprint("measured"), r.TimestampUTC)
	return tw.Flush()
}

func (r *StrategiesReport) renderText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		labelColor.Sprint("STRATEGY"), labelColor.Sprint("RESOLUTION"), labelColor.Sprint("SPAWNS"), labelColor.Sprint("DEFAULT"))
	for _, s := range r.Strategies {
		def := ""
		if s.Default {
			def = okColor.Sprint("*")
		}
		fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", s.Name, s.Resolution, s.SpawnsProcess, def)
	}
	return tw.Flush()
}

func (r *CompareReport) renderText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		labelColor.Sprint("STRATEGY"), labelColor.Sprint("STATUS"), labelColor.Sprint("UPTIME_MS"), labelColor.Sprint("ELAPSED"))
	for _, res := range r.Results {
		ms := unknown
		if res.UptimeMS != nil {
			ms = strconv.FormatInt(*res.UptimeMS, 10)
		}
		st := status(res.OK)
		if res.TimedOut {
			st = failColor.Sprint("timed out")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", res.Strategy, st, ms, res.EndedAt.Sub(res.StartedAt))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := dimColor.Fprintf(w, "parallelism %d, timeout %s\n", r.Parallelism, r.Timeout)
	return err
}
