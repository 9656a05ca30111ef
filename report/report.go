package report

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlabel/labeler"
)

// Box is an inclusive bounding box.
type Box struct {
	XMin int `yaml:"x_min"`
	XMax int `yaml:"x_max"`
	YMin int `yaml:"y_min"`
	YMax int `yaml:"y_max"`
}

// ComponentStat describes one component.
type ComponentStat struct {
	Label int `yaml:"label"`
	Area  int `yaml:"area"`
	Box   Box `yaml:"box"`
	// Fill is Area divided by the bounding-box area, in (0,1].
	Fill float64 `yaml:"fill"`
}

// AreaStats is the distribution of component areas.
type AreaStats struct {
	Min    int     `yaml:"min"`
	Max    int     `yaml:"max"`
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"stddev"`
	Median float64 `yaml:"median"`
}

// Summary is the report for one image.
type Summary struct {
	Source     string          `yaml:"source,omitempty"`
	Width      int             `yaml:"width"`
	Height     int             `yaml:"height"`
	Mode       string          `yaml:"mode"`
	Count      int             `yaml:"count"`
	Foreground int             `yaml:"foreground_pixels"`
	Background int             `yaml:"background_pixels"`
	ElapsedMS  float64         `yaml:"elapsed_ms"`
	Areas      AreaStats       `yaml:"areas"`
	Components []ComponentStat `yaml:"components,omitempty"`
}

// Summarize builds a Summary from r. Components are listed largest first,
// ties broken by label.
func Summarize(source string, r *labeler.Result) Summary {
	s := Summary{
		Source:     source,
		Width:      r.Width,
		Height:     r.Height,
		Mode:       r.Mode.String(),
		Count:      r.Count,
		Foreground: r.Foreground(),
		ElapsedMS:  float64(r.Elapsed.Microseconds()) / 1000,
	}
	s.Background = r.Width*r.Height - s.Foreground

	for _, e := range r.Sorted() {
		l, err := e.Component.Limits()
		if err != nil {
			continue
		}
		area := e.Component.Len()
		boxArea := (l.XMax - l.XMin + 1) * (l.YMax - l.YMin + 1)
		s.Components = append(s.Components, ComponentStat{
			Label: int(e.Label),
			Area:  area,
			Box:   Box{XMin: l.XMin, XMax: l.XMax, YMin: l.YMin, YMax: l.YMax},
			Fill:  float64(area) / float64(boxArea),
		})
	}
	sort.SliceStable(s.Components, func(i, j int) bool {
		return s.Components[i].Area > s.Components[j].Area
	})
	s.Areas = areaStats(s.Components)
	return s
}

func areaStats(cs []ComponentStat) AreaStats {
	if len(cs) == 0 {
		return AreaStats{}
	}
	areas := make([]float64, len(cs))
	for i, c := range cs {
		areas[i] = float64(c.Area)
	}
	sort.Float64s(areas)
	a := AreaStats{
		Min:    int(areas[0]),
		Max:    int(areas[len(areas)-1]),
		Mean:   stat.Mean(areas, nil),
		Median: stat.Quantile(0.5, stat.Empirical, areas, nil),
	}
	if len(areas) > 1 {
		a.StdDev = stat.StdDev(areas, nil)
	}
	return a
}

// WriteYAML encodes s as a YAML document.
func WriteYAML(w io.Writer, s Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}
	return enc.Close()
}

// WriteText prints a header with the totals followed by one row per
// component, at most limit rows (limit ≤ 0 prints all).
func WriteText(w io.Writer, s Summary, limit int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if s.Source != "" {
		fmt.Fprintf(tw, "source:\t%s\n", s.Source)
	}
	fmt.Fprintf(tw, "size:\t%dx%d\n", s.Width, s.Height)
	fmt.Fprintf(tw, "mode:\t%s\n", s.Mode)
	fmt.Fprintf(tw, "components:\t%d\n", s.Count)
	fmt.Fprintf(tw, "foreground:\t%d\n", s.Foreground)
	fmt.Fprintf(tw, "elapsed:\t%.3fms\n", s.ElapsedMS)
	fmt.Fprintf(tw, "area:\tmin %d  max %d  mean %.2f  stddev %.2f  median %.1f\n",
		s.Areas.Min, s.Areas.Max, s.Areas.Mean, s.Areas.StdDev, s.Areas.Median)
	if len(s.Components) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "LABEL\tAREA\tBOX\tFILL")
		for i, c := range s.Components {
			if limit > 0 && i >= limit {
				fmt.Fprintf(tw, "...\t(%d more)\t\t\n", len(s.Components)-limit)
				break
			}
			fmt.Fprintf(tw, "%d\t%d\t[%d..%d]x[%d..%d]\t%.2f\n",
				c.Label, c.Area, c.Box.XMin, c.Box.XMax, c.Box.YMin, c.Box.YMax, c.Fill)
		}
	}
	return tw.Flush()
}
