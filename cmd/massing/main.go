// Package main derives a simple building mass with the shape engine:
// footprint, extrusion, facade classification and bay/floor splits.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"go.uber.org/zap"

	"github.com/edifice3d/edifice/internal/config"
	"github.com/edifice3d/edifice/internal/logger"
	"github.com/edifice3d/edifice/pkg/bmesh"
	"github.com/edifice3d/edifice/pkg/geom"
	"github.com/edifice3d/edifice/pkg/shape"
)

var (
	flagWidth  = flag.Float64("width", 12, "Footprint width")
	flagDepth  = flag.Float64("depth", 8, "Footprint depth")
	flagHeight = flag.Float64("height", 9, "Extrusion height")
	flagRotate = flag.Float64("rotate", 0, "Footprint rotation in degrees")
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Edifice massing demo ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg, *flagWidth, *flagDepth, *flagHeight, *flagRotate); err != nil {
		logger.Error("derivation failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("derivation finished")
}

func run(cfg *config.Config, width, depth, height, rotate float64) error {
	mesh := bmesh.NewMesh()
	a := mesh.AddVertex(geom.Vec3{X: 0, Y: 0, Z: 0})
	b := mesh.AddVertex(geom.Vec3{X: width, Y: 0, Z: 0})
	c := mesh.AddVertex(geom.Vec3{X: width, Y: depth, Z: 0})
	d := mesh.AddVertex(geom.Vec3{X: 0, Y: depth, Z: 0})
	if _, err := mesh.AddFace(a, b, c, d); err != nil {
		return err
	}
	if rotate != 0 {
		rot := geom.RotateZ(rotate * math.Pi / 180)
		for _, v := range mesh.Verts() {
			v.Co = rot.TransformPoint(v.Co)
		}
	}

	ses := shape.NewSession(mesh, shape.Options{
		HorizontalThreshold: cfg.Engine.HorizontalThreshold,
		Logger:              logger.Log,
	})

	base, err := shape.InitialShape(ses)
	if err != nil {
		return err
	}

	mass, err := base.Extrude(ses, height)
	if err != nil {
		return err
	}
	fmt.Printf("mass: %d faces (base, cap, %d sides)\n",
		len(mass.Shapes()), len(mass.Sides()))

	selectors := []shape.Selector{shape.Front, shape.Side, shape.Top}
	buckets, err := mass.Comp(selectors...)
	if err != nil {
		return err
	}
	for _, sel := range selectors {
		fmt.Printf("  %-5s %d face(s)\n", sel, len(buckets[sel]))
	}

	fronts := buckets[shape.Front]
	if len(fronts) == 0 {
		return fmt.Errorf("no front facade classified")
	}
	facade, ok := fronts[0].(*shape.Rect)
	if !ok {
		return fmt.Errorf("front facade is not rectangular")
	}

	// Fixed corner bays around a wide centre bay.
	bays, err := facade.Split(ses, shape.X, shape.SplitSpec{
		shape.Rel(1), shape.Rel(2), shape.Rel(1),
	})
	if err != nil {
		return err
	}

	floors := int(height / 3)
	if floors < 1 {
		floors = 1
	}
	perFloor := make(shape.SplitSpec, floors)
	for i := range perFloor {
		perFloor[i] = shape.Rel(1)
	}

	for i, bay := range bays {
		cells, err := bay.Shape.Split(ses, shape.Y, perFloor)
		if err != nil {
			return err
		}
		fmt.Printf("bay %d ends at %.2f, %d floor cell(s)\n",
			i, bay.Param, len(cells))
	}

	if err := ses.Flush(); err != nil {
		return err
	}
	bounds := mesh.Bounds()
	fmt.Printf("mesh after cleanup: %d faces, %d vertices, extent %v to %v\n",
		len(mesh.Faces()), len(mesh.Verts()), bounds.Min, bounds.Max)
	return nil
}
