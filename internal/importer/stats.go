package importer

import "log"

// LayerStats counts the outcome of one layer's import. Importers return it
// by value; nothing in the pipeline shares mutable counters.
type LayerStats struct {
	Layer    string
	Imported int
	Filtered int
	Errors   int
}

// Report is the folded result of a full run.
type Report struct {
	Layers []LayerStats
}

// Add appends one layer's stats to the report.
func (r *Report) Add(s LayerStats) {
	r.Layers = append(r.Layers, s)
}

// TotalImported sums imported rows across all layers.
func (r *Report) TotalImported() int {
	n := 0
	for _, s := range r.Layers {
		n += s.Imported
	}
	return n
}

// TotalFiltered sums records excluded by the area filter.
func (r *Report) TotalFiltered() int {
	n := 0
	for _, s := range r.Layers {
		n += s.Filtered
	}
	return n
}

// TotalErrors sums records skipped for geometry or write failures.
func (r *Report) TotalErrors() int {
	n := 0
	for _, s := range r.Layers {
		n += s.Errors
	}
	return n
}

// Log prints the end-of-run summary.
func (r *Report) Log() {
	log.Println("==== import summary ====")
	for _, s := range r.Layers {
		log.Printf("[%s] imported=%d filtered=%d errors=%d", s.Layer, s.Imported, s.Filtered, s.Errors)
	}
	log.Printf("[total] imported=%d filtered=%d errors=%d",
		r.TotalImported(), r.TotalFiltered(), r.TotalErrors())
}
