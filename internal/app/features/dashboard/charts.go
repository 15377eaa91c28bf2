// internal/app/features/dashboard/charts.go
package dashboard

import (
	"fmt"
	"math"
	"strconv"
)

// Pie geometry in SVG user units (viewBox 0 0 200 200).
const (
	pieCX     = 100.0
	pieCY     = 100.0
	pieRadius = 90.0
)

type bar struct {
	Label  string
	Value  int64
	Height string // percentage of the tallest bar, e.g. "42.50%"
	Fill   string
}

type barChartVM struct {
	Title       string
	Description string
	Bars        []bar
	Empty       bool
}

func barChart(title, description string, data []ContentTypeSlice) barChartVM {
	vm := barChartVM{Title: title, Description: description, Empty: len(data) == 0}

	var max int64
	for _, d := range data {
		if d.Count > max {
			max = d.Count
		}
	}
	for _, d := range data {
		h := 0.0
		if max > 0 {
			h = float64(d.Count) / float64(max) * 100
		}
		vm.Bars = append(vm.Bars, bar{
			Label:  d.Type,
			Value:  d.Count,
			Height: strconv.FormatFloat(h, 'f', 2, 64) + "%",
			Fill:   BarFill,
		})
	}
	return vm
}

type pieSlice struct {
	Name   string
	Value  int64
	Fill   string
	Path   string // SVG path; empty when Circle is set
	Circle bool   // the only non-zero slice covers the full disc
}

type legendItem struct {
	Name  string
	Value int64
	Fill  string
}

type pieChartVM struct {
	Slices []pieSlice
	Legend []legendItem
	Empty  bool
	CX, CY float64
	R      float64
}

func pieChart(data []PageStatusSlice) pieChartVM {
	vm := pieChartVM{CX: pieCX, CY: pieCY, R: pieRadius}

	var total int64
	nonZero := 0
	for _, d := range data {
		vm.Legend = append(vm.Legend, legendItem{Name: string(d.Name), Value: d.Value, Fill: d.Fill})
		if d.Value > 0 {
			total += d.Value
			nonZero++
		}
	}
	if total == 0 {
		vm.Empty = true
		return vm
	}

	start := -math.Pi / 2
	for _, d := range data {
		if d.Value <= 0 {
			continue
		}
		s := pieSlice{Name: string(d.Name), Value: d.Value, Fill: d.Fill}
		if nonZero == 1 {
			s.Circle = true
			vm.Slices = append(vm.Slices, s)
			break
		}
		sweep := float64(d.Value) / float64(total) * 2 * math.Pi
		s.Path = arcPath(start, start+sweep)
		vm.Slices = append(vm.Slices, s)
		start += sweep
	}
	return vm
}

// arcPath returns a wedge from the centre between two angles in radians.
func arcPath(from, to float64) string {
	x1 := pieCX + pieRadius*math.Cos(from)
	y1 := pieCY + pieRadius*math.Sin(from)
	x2 := pieCX + pieRadius*math.Cos(to)
	y2 := pieCY + pieRadius*math.Sin(to)
	large := 0
	if to-from > math.Pi {
		large = 1
	}
	return fmt.Sprintf("M %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f Z",
		pieCX, pieCY, x1, y1, pieRadius, pieRadius, large, x2, y2)
}
