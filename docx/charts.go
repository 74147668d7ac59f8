package docx

import (
	"encoding/xml"
	"strconv"
)

// ChartInfo holds the extracted summary of one embedded chart.
type ChartInfo struct {
	Title   string
	Type    string
	Series  []ChartSeries
	HasData bool
}

// ChartSeries is one labeled data sequence of a chart.
type ChartSeries struct {
	Name   string
	Values []float64
	// Categories holds the x-axis labels parallel to Values, or nil when
	// the series has none.
	Categories []string
}

// chartSpaceXML represents a word/charts/chart*.xml part.
type chartSpaceXML struct {
	XMLName xml.Name `xml:"chartSpace"`
	Chart   chartXML `xml:"chart"`
}

type chartXML struct {
	Title    *chartTitleXML `xml:"title"`
	PlotArea *plotAreaXML   `xml:"plotArea"`
}

type chartTitleXML struct {
	Tx *chartTextXML `xml:"tx"`
}

// chartTextXML carries a text value either directly or through a cached
// string series.
type chartTextXML struct {
	V      string     `xml:"v"`
	StrRef *strRefXML `xml:"strRef"`
}

// value returns the direct value if present, otherwise the first cached
// point.
func (t *chartTextXML) value() string {
	if t == nil {
		return ""
	}
	if t.V != "" {
		return t.V
	}
	if t.StrRef != nil && t.StrRef.Cache != nil && len(t.StrRef.Cache.Points) > 0 {
		return t.StrRef.Cache.Points[0].V
	}
	return ""
}

type strRefXML struct {
	Cache *ptListXML `xml:"strCache"`
}

type numRefXML struct {
	Cache *ptListXML `xml:"numCache"`
}

type ptListXML struct {
	Points []ptXML `xml:"pt"`
}

type ptXML struct {
	Idx string `xml:"idx,attr"`
	V   string `xml:"v"`
}

// plotAreaXML collects the chart-group children (barChart, lineChart, ...)
// in document order; axis and layout children decode to groups with no
// series and are ignored downstream.
type plotAreaXML struct {
	Groups []chartGroupXML `xml:",any"`
}

type chartGroupXML struct {
	XMLName xml.Name
	Series  []seriesXML `xml:"ser"`
}

type seriesXML struct {
	Tx  *chartTextXML `xml:"tx"`
	Cat *catDataXML   `xml:"cat"`
	Val *valDataXML   `xml:"val"`
}

type catDataXML struct {
	StrRef *strRefXML `xml:"strRef"`
}

type valDataXML struct {
	NumRef *numRefXML `xml:"numRef"`
	NumLit *ptListXML `xml:"numLit"`
}

// chartTypeNames is the fixed probe order for chart-type classification;
// the first matching plot-area child wins.
var chartTypeNames = []struct {
	tag  string
	name string
}{
	{"barChart", "Bar Chart"},
	{"lineChart", "Line Chart"},
	{"pieChart", "Pie Chart"},
	{"areaChart", "Area Chart"},
	{"scatterChart", "Scatter Chart"},
	{"bubbleChart", "Bubble Chart"},
	{"doughnutChart", "Doughnut Chart"},
	{"radarChart", "Radar Chart"},
	{"surfaceChart", "Surface Chart"},
}

// parseChart extracts title, type, and series data from one chart part.
func parseChart(data []byte) (ChartInfo, error) {
	var doc chartSpaceXML
	if err := decodeXML(data, &doc); err != nil {
		return ChartInfo{}, err
	}

	var info ChartInfo
	if doc.Chart.Title != nil {
		info.Title = doc.Chart.Title.Tx.value()
	}

	plotArea := doc.Chart.PlotArea
	if plotArea == nil {
		return info, nil
	}

	for _, ct := range chartTypeNames {
		for _, g := range plotArea.Groups {
			if g.XMLName.Local == ct.tag {
				info.Type = ct.name
				break
			}
		}
		if info.Type != "" {
			break
		}
	}

	for _, g := range plotArea.Groups {
		for _, ser := range g.Series {
			rawName := ser.Tx.value()

			var categories []string
			if ser.Cat != nil && ser.Cat.StrRef != nil && ser.Cat.StrRef.Cache != nil {
				for _, pt := range ser.Cat.StrRef.Cache.Points {
					if pt.V != "" {
						categories = append(categories, pt.V)
					}
				}
			}

			var values []float64
			if ser.Val != nil {
				if ser.Val.NumRef != nil && ser.Val.NumRef.Cache != nil {
					values = parseChartValues(ser.Val.NumRef.Cache.Points)
				}
				if len(values) == 0 && ser.Val.NumLit != nil {
					values = parseChartValues(ser.Val.NumLit.Points)
				}
			}
			if len(values) > 0 {
				info.HasData = true
			}

			if rawName == "" && len(values) == 0 {
				continue
			}
			name := rawName
			if name == "" {
				name = "Unnamed Series"
			}
			info.Series = append(info.Series, ChartSeries{
				Name:       name,
				Values:     values,
				Categories: categories,
			})
		}
	}

	return info, nil
}

// parseChartValues parses cached numeric points; non-numeric tokens are
// skipped.
func parseChartValues(points []ptXML) []float64 {
	var values []float64
	for _, pt := range points {
		if pt.V == "" {
			continue
		}
		v, err := strconv.ParseFloat(pt.V, 64)
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	return values
}

// resolveCharts scans the document relationships for chart links and parses
// each referenced chart part. An unparseable chart yields a zero-value entry
// so the renderer can still acknowledge it.
func resolveCharts(r *Reader) (map[string]ChartInfo, error) {
	data, err := r.Read(documentRelsPath)
	if err != nil {
		return nil, err
	}
	targets, err := chartRelTargets(data)
	if err != nil {
		return nil, err
	}

	charts := make(map[string]ChartInfo, len(targets))
	for rid, target := range targets {
		var info ChartInfo
		if data, err := r.Read(target); err == nil {
			if parsed, perr := parseChart(data); perr == nil {
				info = parsed
			}
		}
		charts[rid] = info
	}
	return charts, nil
}
