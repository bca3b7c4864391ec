// Package chart renders analysis results as a two-panel PNG figure.
//
// The left panel shows the observed revenue series on its own; the right
// panel overlays the observations with the fitted linear trend and the
// seasonal curve evaluated over the extended months. Both panels carry
// Month/Revenue axis labels and a legend.
//
//	fig, err := chart.Render(res)
//	if err != nil {
//	    return err
//	}
//	if err := fig.Save("revenue_trends.png"); err != nil {
//	    return err
//	}
//
// Rendering is file-based: Save writes a PNG, WriteTo streams the same
// encoding to any writer.
package chart
