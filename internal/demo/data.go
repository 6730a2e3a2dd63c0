// Package demo generates the sample dataset shown by the example programs.
package demo

import (
	"fmt"
	"time"

	"github.com/go-theft-auto/datagrid"
)

// TotalRecords is the size of the generated dataset.
const TotalRecords = 305

var (
	cities = []string{"Liberty City", "Vice City", "San Andreas", "Los Santos", "San Fierro", "Las Venturas"}
	names  = []string{"Claude", "Tommy", "Carl", "Niko", "Victor", "Toni", "Huang", "Luis", "Johnny", "Franklin"}
	cars   = []string{"Infernus", "Cheetah", "Banshee", "Sabre", "Stallion", "Comet", "Turismo", "Sentinel"}
)

// Headers returns the column specs of the dataset.
func Headers() []datagrid.ColumnSpec {
	return []datagrid.ColumnSpec{
		{Name: "ID"},
		{Name: "Name"},
		{Name: "City"},
		{Name: "Vehicle"},
		{Name: "Wanted"},
		{Name: "Cash"},
		{Name: "Last Seen"},
	}
}

// Page returns the rows of a 1-based page.
func Page(page, size int) [][]any {
	start := (page - 1) * size
	end := min(start+size, TotalRecords)
	if start < 0 || start >= end {
		return nil
	}
	base := time.Date(2001, 10, 22, 0, 0, 0, 0, time.UTC)
	rows := make([][]any, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, []any{
			i + 1,
			names[i%len(names)],
			cities[(i/3)%len(cities)],
			cars[(i*7)%len(cars)],
			i % 6,
			fmt.Sprintf("$%d", (i*7919)%100000),
			base.Add(time.Duration(i) * 37 * time.Hour).Format("2006-01-02"),
		})
	}
	return rows
}
