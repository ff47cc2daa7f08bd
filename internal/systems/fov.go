package systems

import (
	"github.com/Goluxas/roguelike-tutorial/internal/domain"
	"github.com/Goluxas/roguelike-tutorial/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ComputeVisibleTiles returns the cells viewer sees on its level, keyed by
// y*width+x, and marks every one of them explored.
func ComputeVisibleTiles(viewer *domain.Entity) map[int]bool {
	visible := make(map[int]bool)

	w := viewer.World()
	if w == nil {
		return visible
	}
	calc := w.FOV(viewer.Z())
	if calc == nil {
		return visible
	}

	radius := domain.DefaultSightRadius
	if viewer.Vision != nil {
		radius = viewer.Vision.Radius
	}

	z := viewer.Z()
	calc.Compute(viewer.X(), viewer.Y(), radius, func(x, y int) {
		visible[y*w.Width()+x] = true
		w.SetExplored(x, y, z, true)
	})

	logger.Log.WithFields(logrus.Fields{
		"component": "fov_system",
		"viewer_id": viewer.ID,
		"radius":    radius,
		"visible":   len(visible),
	}).Debug("Visibility computed.")

	return visible
}
