// Package percolate simulates site percolation on a square lattice: cells
// are walled off independently at a chosen density, the remaining cells are
// grouped into 4-connected clusters, and the lattice is tested for a cluster
// that spans it from top to bottom.
//
// Layout:
//
//	lattice/        bordered N×N grid, seeded random builder, picture helpers
//	cluster/        label propagation, percolation test, size ranking, BFS check
//	export/         raw .dat dump and reader, PGM and PNG cluster images
//	view/           terminal preview (tcell)
//	simulation/     Config and the end-to-end Run pipeline with slog logging
//	cmd/percolate/  command-line front end (cobra, viper, tint)
//
// Quick example:
//
//	g, _, err := lattice.Build(64, 0.4, lattice.WithSeed(1564))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cluster.Converge(g)
//	if id := cluster.Percolates(g); id != 0 {
//	    fmt.Println("spanning cluster", id)
//	}
//	r := cluster.Rank(g)
//	_ = export.WritePGMFile("map.pgm", g, r, r.DisplayLimit(0))
//
// Pipeline, leaves first:
//
//	Build → Converge → Percolates → WriteRaw → Rank → WritePGM / WritePNG
//
// Install the command with:
//
//	go install github.com/katalvlaran/percolate/cmd/percolate@latest
package percolate
