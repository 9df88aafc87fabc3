package app

import "oledpanel/layout"

// Area names produced by BuildStandardLayout. The names follow the
// deterministic {parent}_{index} scheme of layout splits, so
// configuration can bind to them directly.
const (
	AreaMetricsBand = "root_0"
	AreaDivider     = "root_1"
	AreaInfo        = "root_2"

	AreaResourceMetrics = "root_0_0"
	AreaServices        = "root_0_1"

	AreaMetric0 = "root_0_0_0"
	AreaMetric1 = "root_0_0_1"
	AreaMetric2 = "root_0_0_2"

	AreaHostname = "root_2_0"
	AreaIP       = "root_2_1"
)

// MetricAreas lists the metric cells left to right.
var MetricAreas = []string{AreaMetric0, AreaMetric1, AreaMetric2}

// BuildStandardLayout carves the canvas into the stock panel regions:
// a metrics band over a thin divider over two info lines, with the
// band split between three resource metrics and the service icons.
func BuildStandardLayout(g *layout.Grid) error {
	// 40% metrics band, 10% divider, 50% info.
	if _, err := g.Split(layout.RootName, layout.AlongHeight, 3, []float64{0.4, 0.1, 0.5}); err != nil {
		return err
	}
	// 60% resource metrics, 40% service icons.
	if _, err := g.Split(AreaMetricsBand, layout.AlongWidth, 2, []float64{0.6, 0.4}); err != nil {
		return err
	}
	if _, err := g.Split(AreaResourceMetrics, layout.AlongWidth, 3, nil); err != nil {
		return err
	}
	if _, err := g.Split(AreaInfo, layout.AlongHeight, 2, nil); err != nil {
		return err
	}
	return nil
}
