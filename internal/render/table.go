// Package render formats results for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/frankjstrike/restaurant-decider/internal/models"
)

// padding is the extra width added to each column beyond its longest value.
const padding = 5

// Pick prints the selected restaurant with its details.
func Pick(w io.Writer, r models.Restaurant) {
	fmt.Fprintf(w, "\nYou should go to: %s\n", r.Name)
	fmt.Fprintf(w, "Address: %s\n", r.Address)
	fmt.Fprintf(w, "Rating: %s\n", r.RatingLabel())
	fmt.Fprintf(w, "Price Level: %s\n", r.PriceLabel())
	if r.DistanceMeters > 0 {
		fmt.Fprintf(w, "Distance: %s\n", r.DistanceLabel())
	}
	if d := r.Details; d != nil {
		if d.FormattedPhoneNumber != "" {
			fmt.Fprintf(w, "Phone: %s\n", d.FormattedPhoneNumber)
		}
		if d.Website != "" {
			fmt.Fprintf(w, "Website: %s\n", d.Website)
		}
	}
}

// Table prints all restaurants as an aligned text table. Column widths are
// sized to the longest value in each column plus padding.
func Table(w io.Writer, rs []models.Restaurant) {
	if len(rs) == 0 {
		return
	}

	headers := []string{"Name", "Address", "Rating", "Price Level", "Distance"}
	rows := make([][]string, 0, len(rs))
	for _, r := range rs {
		rows = append(rows, []string{r.Name, r.Address, r.RatingLabel(), r.PriceLabel(), r.DistanceLabel()})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	for i := range widths {
		widths[i] += padding
	}

	fmt.Fprintf(w, "\nList of restaurants found:\n\n")
	printRow(w, headers, widths)

	total := 0
	for _, wd := range widths {
		total += wd
	}
	// Separator width accounts for the " | " between columns.
	fmt.Fprintln(w, strings.Repeat("-", total+3*(len(widths)-1)))

	for _, row := range rows {
		printRow(w, row, widths)
	}
}

func printRow(w io.Writer, cells []string, widths []int) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
	}
	fmt.Fprintln(w, strings.Join(parts, " | "))
}
