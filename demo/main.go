// Package main demonstrates linear and seasonal trend forecasting on a
// monthly revenue series.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sartorproj/trendfit/analysis"
	"github.com/sartorproj/trendfit/chart"
)

// Ten months of revenue in millions: a rising trend with a mild seasonal
// ripple.
var (
	months  = []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	revenue = []float64{43.8, 46.9, 48.9, 49.8, 50.0, 50.2, 51.2, 53.2, 56.2, 60.0}
)

const figureFile = "revenue_trends.png"

func main() {
	fmt.Println(strings.Repeat("=", 64))
	fmt.Println("TrendFit Demonstration - linear and seasonal revenue trends")
	fmt.Println(strings.Repeat("=", 64))
	fmt.Println()

	res, err := analysis.Run(months, revenue)
	if err != nil {
		fmt.Fprintln(os.Stderr, "analysis failed:", err)
		os.Exit(1)
	}

	res.Report(os.Stdout)

	diag := res.Diagnostics()
	fmt.Println()
	fmt.Printf("Linear fit:   RMSE=%.3f MAE=%.3f R2=%.3f\n", diag.LinearRMSE, diag.LinearMAE, diag.LinearR2)
	fmt.Printf("Seasonal fit: RMSE=%.3f MAE=%.3f R2=%.3f\n", diag.SeasonalRMSE, diag.SeasonalMAE, diag.SeasonalR2)

	fig, err := chart.Render(res)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rendering failed:", err)
		os.Exit(1)
	}
	if err := fig.Save(figureFile); err != nil {
		fmt.Fprintln(os.Stderr, "rendering failed:", err)
		os.Exit(1)
	}

	fmt.Printf("\nFigure written to %s\n", figureFile)
}
