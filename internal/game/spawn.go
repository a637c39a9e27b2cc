package game

import (
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/gravewalk/internal/entity"
	"github.com/samdwyer/gravewalk/internal/grid"
)

// propDensity scales the rolled prop count.
const propDensity = 0.7

// SpawnProps scatters floor((countHint + rand*variance) * 0.7) props over
// free interior cells. The hero's spawn cell is always kept clear. Returns the
// number placed.
func (s *Session) SpawnProps(countHint, variance float64) int {
	h := s.bounds.HalfSize
	interior := grid.NewBounds(h - 1)

	s.propCells = grid.NewOccupancy(s.bounds)
	s.propCells.Reserve(grid.Origin)
	for _, p := range s.props {
		s.propCells.Reserve(p.Position)
	}

	free := interior.Side() * interior.Side()
	if interior.Contains(grid.Origin) {
		free--
	}
	for _, p := range s.props {
		if p.Position != grid.Origin && interior.Contains(p.Position) {
			free--
		}
	}

	count := int((countHint + s.rng.Float64()*variance) * propDensity)
	count = max(0, min(count, free))

	width := float64(interior.Side())
	for i := 0; i < count; i++ {
		var cell grid.Vec
		for {
			cell = grid.Vec{
				X: int(s.rng.Float64()*width) - h + 1,
				Y: int(s.rng.Float64()*width) - h + 1,
			}
			if !s.propCells.Taken(cell) {
				break
			}
		}

		propType := s.catalog.RandomType(s.rng)
		dir := grid.Directions[int(s.rng.Float64()*4)]
		prop := entity.NewProp(s.scene.NewHandle(), propType, cell, dir)
		s.scene.Attach(prop.Handle)
		s.props = append(s.props, prop)
		s.propCells.Reserve(cell)
	}

	s.log.WithField("count", count).Debug("Props spawned")
	return count
}

// SpawnMobs brings in floor(minMobs + rand*variance) zombies, capped so the
// live total stays within the grid's edge capacity. Each appears on the edge
// opposite its facing, so it walks inward. Returns the number placed.
func (s *Session) SpawnMobs(minMobs, variance float64) int {
	h := s.bounds.HalfSize
	count := min(s.bounds.EdgeCapacity()-len(s.mobs), int(minMobs+s.rng.Float64()*variance))
	count = max(0, count)

	side := float64(s.bounds.Side())
	for i := 0; i < count; {
		dir := grid.Directions[int(s.rng.Float64()*4)]
		value := int(s.rng.Float64()*side) - h

		cell := grid.Vec{X: value, Y: value}
		if dir.X != 0 {
			cell.X = -dir.X * h
		}
		if dir.Y != 0 {
			cell.Y = -dir.Y * h
		}

		if cell == s.hero.Position || s.Blocked(cell) {
			continue
		}

		mob := entity.NewZombie(s.scene.NewHandle(), s.zombie.Name, cell, dir)
		s.scene.Attach(mob.Handle)
		s.mobs = append(s.mobs, mob)
		i++
	}

	s.log.WithFields(logrus.Fields{
		"count": count,
		"total": len(s.mobs),
	}).Debug("Mobs spawned")
	return count
}
