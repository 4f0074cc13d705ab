// Package plotfile is a figure.Backend that renders with gonum/plot and
// writes image files. Figures are plain records until they are drawn; every
// Draw rebuilds the gonum plots and rewrites the figure's file.
package plotfile
